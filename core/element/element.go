// Package element builds validated, priced bill-of-materials line items
// from normalized CAD export rows. Construction never fails: every
// anomaly is downgraded to an issue and a safe default so one malformed
// row cannot abort a batch.
package element

import (
	stderrors "errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"duct-cost/core/pricing"
	"duct-cost/core/types"
	"duct-cost/internal/errors"
)

// Placeholder labels substituted for missing identity fields.
const (
	PlaceholderSystem   = "SYSTÉM"
	PlaceholderPosition = "POZICE"
)

// ErrNoFormula is returned by shapes that deliberately declare no
// insulation formula. The pipeline falls back to the known surface
// without recording an issue.
var ErrNoFormula = stderrors.New("shape declares no insulation formula")

// Rule is the per-shape contract the construction pipeline dispatches
// through. Implementations are small declarative bundles: required
// dimensions, a fixed unit, a spec hook and the two formulas.
type Rule interface {
	// ID names the shape.
	ID() string

	// FixedUnit returns the unit the shape is measured in, or "" when
	// any canonical unit is acceptable.
	FixedUnit() string

	// RequiredDims lists the dimensions the shape needs from the row.
	RequiredDims() []string

	// ParseSpec derives further attributes from the spec text. A
	// returned error is recorded and poisons pricing; hooks may also
	// record issues themselves without failing.
	ParseSpec(e *Element) error

	// InsulationMM2 computes the insulation surface in mm2.
	InsulationMM2(e *Element) (float64, error)

	// Price computes the element price from the pricelist.
	Price(e *Element, pl *pricing.Pricelist) (float64, error)
}

// Element is one validated, priced line item. It is constructed once by
// Construct and read-only afterwards.
type Element struct {
	Shape string

	System   string
	Position string
	PN       string
	Name     string
	Spec     string

	Quantity     float64
	Unit         string
	InsulationMM float64

	// InsulationAreaM2 is NaN when InsulationMM is zero.
	InsulationAreaM2 float64

	// Price is NaN when the pricing formula or lookup failed.
	Price float64

	Issues Issues

	dims map[string]float64
}

// AddIssue records a plain diagnostic message.
func (e *Element) AddIssue(msg string) {
	e.Issues = append(e.Issues, Issue{Message: msg})
}

// AddFailure records a diagnostic carrying the underlying failure.
func (e *Element) AddFailure(msg string, cause error) {
	e.Issues = append(e.Issues, Issue{Message: msg, Cause: cause})
}

// Dim returns a bound dimension, or 0 when it was never set.
func (e *Element) Dim(name string) float64 {
	return e.dims[name]
}

// LookupDim returns a bound dimension and whether it was set.
func (e *Element) LookupDim(name string) (float64, bool) {
	v, ok := e.dims[name]
	return v, ok
}

// RequireDim returns a bound dimension or a geometry error when it was
// never set, typically because a spec hook failed earlier.
func (e *Element) RequireDim(name string) (float64, error) {
	v, ok := e.dims[name]
	if !ok {
		return 0, errors.Geometry(name + " is not set")
	}
	return v, nil
}

// SetDim binds a dimension; spec hooks use it for derived values.
func (e *Element) SetDim(name string, v float64) {
	e.dims[name] = v
}

// ClearDim removes a dimension that a spec hook has folded into another.
func (e *Element) ClearDim(name string) {
	delete(e.dims, name)
}

// Record serializes the element to the flat output contract.
func (e *Element) Record() types.Record {
	return types.Record{
		System:           e.System,
		Position:         e.Position,
		PN:               e.PN,
		Name:             e.Name,
		Spec:             e.Spec,
		Quantity:         e.Quantity,
		Unit:             e.Unit,
		InsulationMM:     e.InsulationMM,
		InsulationAreaM2: e.InsulationAreaM2,
		Price:            e.Price,
		Issues:           e.Issues.String(),
	}
}

// Construct builds an element from a row using the given shape rule and
// pricelist. It always returns a usable element; every failure mode ends
// up in the issue list, never as a panic or error.
func Construct(row types.Row, pl *pricing.Pricelist, rule Rule) *Element {
	e := &Element{
		Shape: rule.ID(),
		dims:  make(map[string]float64, len(row.Extra)),
	}

	// Common fields. Missing identity gets a placeholder, a missing or
	// non-positive quantity is flagged but does not block construction.
	e.System = row.System
	if e.System == "" {
		e.AddIssue("missing system")
		e.System = PlaceholderSystem
	}
	e.Position = row.Position
	if e.Position == "" {
		e.AddIssue("missing position")
		e.Position = PlaceholderPosition
	}
	e.PN = row.PN
	e.Name = row.Name
	e.Spec = row.Spec
	e.Quantity = row.Quantity
	if !(e.Quantity > 0) {
		e.AddIssue("missing/zero quantity")
	}
	e.Unit = row.Unit
	e.InsulationMM = row.InsulationMM

	// Unit validation.
	if fixed := rule.FixedUnit(); fixed != "" {
		if e.Unit != fixed {
			e.AddIssue(fmt.Sprintf("unit should be [%s]", fixed))
		}
	} else if !types.IsCanonicalUnit(e.Unit) {
		e.AddIssue("invalid unit")
	}

	// Dimension binding. Required dimensions the row lacks default to 0
	// and are flagged by name; sorted so the message is deterministic.
	for name, v := range row.Extra {
		if math.IsNaN(v) {
			continue
		}
		e.dims[name] = v
	}
	var missing []string
	for _, name := range rule.RequiredDims() {
		if _, ok := e.dims[name]; !ok {
			e.dims[name] = 0
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		e.AddIssue("missing " + strings.Join(missing, ", "))
	}

	// Spec hook. A hard failure leaves derived dimensions unset, so the
	// formulas below degrade on their own; pricing is poisoned outright.
	specErr := rule.ParseSpec(e)
	if specErr != nil {
		e.AddFailure("failed to parse element spec", specErr)
	}

	// Insulation area, only when insulation is called for.
	if e.InsulationMM > 0 {
		areaMM2, err := rule.InsulationMM2(e)
		switch {
		case err == nil:
			e.InsulationAreaM2 = areaMM2 / 1e6
		case stderrors.Is(err, ErrNoFormula):
			e.InsulationAreaM2 = e.Dim(types.DimSurface)
		default:
			e.AddFailure("insulation calculation failed", err)
			e.InsulationAreaM2 = e.Dim(types.DimSurface)
		}
	} else {
		e.InsulationAreaM2 = math.NaN()
	}

	// Price.
	if specErr != nil {
		e.AddFailure("price calculation failed", specErr)
		e.Price = math.NaN()
		return e
	}
	price, err := rule.Price(e, pl)
	if err != nil {
		e.AddFailure("price calculation failed", err)
		e.Price = math.NaN()
		return e
	}
	e.Price = price
	return e
}

// CatalogPrice is the default pricing formula: a part-number catalog
// lookup multiplied by quantity. A catalog miss degrades to NaN without
// an issue; a unit disagreement between catalog and element is flagged.
func CatalogPrice(e *Element, pl *pricing.Pricelist) (float64, error) {
	rate, err := pl.Lookup(e.PN)
	if err != nil {
		return math.NaN(), nil
	}
	if rate.Unit != e.Unit {
		e.AddIssue("pricelist unit mismatch")
		return math.NaN(), nil
	}
	return rate.Price.Mul(decimal.NewFromFloat(e.Quantity)).InexactFloat64(), nil
}
