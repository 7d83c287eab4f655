// Package specparse extracts secondary geometric parameters from the
// free-text specification field of a CAD export row.
//
// A spec string carries KEY=NUMBER tokens, with comma-joined keys sharing
// one value: "A,B=500, R=200, a=90" yields A=500, B=500, R=200, a=90.
// Keys are case- and symbol-sensitive. The parser is tolerant: malformed
// tokens are skipped, and a string with no tokens yields an empty map.
// Trailing degree marks on values are dropped since only the digits are
// captured.
package specparse

import (
	"regexp"
	"strconv"
	"strings"
)

var tokenPattern = regexp.MustCompile(`([a-zA-Z\d,]+)=(\d+)`)

// Parse returns every key/value pair found in spec.
func Parse(spec string) map[string]float64 {
	out := make(map[string]float64)
	for _, m := range tokenPattern.FindAllStringSubmatch(spec, -1) {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		for _, key := range strings.Split(m[1], ",") {
			if key == "" {
				continue
			}
			out[key] = v
		}
	}
	return out
}
