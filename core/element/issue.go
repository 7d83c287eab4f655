// Package element - diagnostic issues
package element

import "strings"

// Issue is one non-fatal diagnostic recorded while constructing an
// element: a message, optionally carrying the underlying failure.
type Issue struct {
	Message string
	Cause   error
}

// String returns the issue message. The attached cause is diagnostic
// detail only and never part of the output contract.
func (i Issue) String() string {
	return i.Message
}

// Issues is the ordered list of diagnostics attached to an element.
type Issues []Issue

// String joins the issue messages in recorded order.
func (is Issues) String() string {
	msgs := make([]string, len(is))
	for i, issue := range is {
		msgs[i] = issue.Message
	}
	return strings.Join(msgs, "; ")
}
