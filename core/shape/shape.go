// Package shape declares the per-shape costing rules: required
// dimensions, classification predicate, spec hook, insulation formula
// and pricing formula for every duct and pipe component the CAD export
// can describe.
//
// The geometry formulas are deliberate approximations carried over from
// the established costing practice (reductions as their bounding
// envelope, tees as two cylinders). Do not tighten them without domain
// confirmation.
package shape

import (
	"github.com/shopspring/decimal"

	"duct-cost/core/element"
	"duct-cost/core/pricing"
	"duct-cost/core/specparse"
	"duct-cost/core/types"
	"duct-cost/internal/errors"
)

// Rule extends the construction contract with the classification
// predicate the registry dispatches on.
type Rule interface {
	element.Rule

	// Match reports whether this shape describes the row.
	Match(row types.Row) bool
}

// ordered is the closed set of shape rules, most specific first: a
// refinement must be checked before the rule it refines (the floor
// channel before the generic flat duct). The set is fixed at build time.
var ordered = []Rule{
	floorFlatDuct{},
	roundTube{},
	dampedRoundTube{},
	roundTubeJoint{},
	flatDuct{},
	dampedFlatDuct{},
	roundElbow{},
	flatElbow{},
	flatReduction{},
	roundReduction{},
	flatRoundReduction{},
	roundTee{},
}

// Classify returns the first rule claiming the row, or the generic
// fallback when none does.
func Classify(row types.Row) element.Rule {
	for _, r := range ordered {
		if r.Match(row) {
			return r
		}
	}
	return Generic{}
}

// Generic is the fallback shape for rows no rule claims. It performs
// only the common validation: the insulation formula is absent by
// design and pricing degrades to a part-number catalog lookup, so both
// fail without extra issues unless a catalog entry exists.
type Generic struct{}

func (Generic) ID() string              { return "generic" }
func (Generic) FixedUnit() string       { return "" }
func (Generic) RequiredDims() []string  { return nil }
func (Generic) Match(types.Row) bool    { return false }
func (Generic) ParseSpec(*element.Element) error { return nil }

func (Generic) InsulationMM2(*element.Element) (float64, error) {
	return 0, element.ErrNoFormula
}

func (Generic) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return element.CatalogPrice(e, pl)
}

var two = decimal.NewFromInt(2)

// surfaceCost is the recurring surface-times-rate pricing term.
func surfaceCost(e *element.Element, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(e.Dim(types.DimSurface)).Mul(rate)
}

// specDim names one spec-string key and the dimension it binds to.
type specDim struct {
	key string
	dim string
}

// bindSpecDims parses the element's spec text and binds the wanted keys
// as dimensions. A missing key fails the whole hook, leaving every
// wanted dimension to its pre-hook value.
func bindSpecDims(e *element.Element, wants ...specDim) error {
	parsed := specparse.Parse(e.Spec)
	for _, w := range wants {
		if _, ok := parsed[w.key]; !ok {
			return errors.SpecParse("spec is missing "+w.key, nil)
		}
	}
	for _, w := range wants {
		e.SetDim(w.dim, parsed[w.key])
	}
	return nil
}
