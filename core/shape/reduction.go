// Package shape - reduction shapes
//
// A flat-to-flat and a round-to-round reduction share the export name;
// the spec marker (side lengths vs diameter) tells them apart, same as
// the elbows. All three reductions approximate the tapered body as its
// bounding envelope.
package shape

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"duct-cost/core/element"
	"duct-cost/core/pricing"
	"duct-cost/core/specparse"
	"duct-cost/core/types"
	"duct-cost/internal/errors"
)

// flatReduction tapers between two rectangular profiles; the bounding
// box uses the larger of each side pair.
type flatReduction struct{}

func (flatReduction) ID() string        { return "flat_reduction" }
func (flatReduction) FixedUnit() string { return types.UnitPiece }

func (flatReduction) RequiredDims() []string {
	return []string{types.DimLength, types.DimSurface}
}

func (flatReduction) Match(row types.Row) bool {
	return row.Name == "Redukce" && strings.Contains(row.Spec, "A=")
}

func (flatReduction) ParseSpec(e *element.Element) error {
	parsed := specparse.Parse(e.Spec)
	a, ok := parsed["A"]
	if !ok {
		return errors.SpecParse("spec is missing A", nil)
	}
	b, ok := parsed["B"]
	if !ok {
		return errors.SpecParse("spec is missing B", nil)
	}
	e.SetDim(types.DimWidth, math.Max(a, parsed["A2"]))
	e.SetDim(types.DimHeight, math.Max(b, parsed["B2"]))
	return nil
}

// Hollow flat trapezoid, approximated as its bounding box ~ q * 2 * (w + h) * l.
func (flatReduction) InsulationMM2(e *element.Element) (float64, error) {
	w, err := e.RequireDim(types.DimWidth)
	if err != nil {
		return 0, err
	}
	h, err := e.RequireDim(types.DimHeight)
	if err != nil {
		return 0, err
	}
	circumference := 2 * (w + h + 4*e.InsulationMM)
	return e.Quantity * circumference * e.Dim(types.DimLength), nil
}

func (flatReduction) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	flanges := pl.Flange.Mul(two)
	return surfaceCost(e, pl.SheetMetalM2).Add(flanges).InexactFloat64(), nil
}

// roundReduction tapers between two diameters; the envelope uses the
// larger one.
type roundReduction struct{}

func (roundReduction) ID() string        { return "round_reduction" }
func (roundReduction) FixedUnit() string { return types.UnitPiece }

func (roundReduction) RequiredDims() []string {
	return []string{types.DimLength, types.DimSurface}
}

func (roundReduction) Match(row types.Row) bool {
	return row.Name == "Redukce" && strings.Contains(row.Spec, "D=")
}

func (roundReduction) ParseSpec(e *element.Element) error {
	parsed := specparse.Parse(e.Spec)
	d, ok := parsed["D"]
	if !ok {
		return errors.SpecParse("spec is missing D", nil)
	}
	d2, ok := parsed["D2"]
	if !ok {
		return errors.SpecParse("spec is missing D2", nil)
	}
	e.SetDim(types.DimDiameter, math.Max(d, d2))
	return nil
}

// Hollow frustum, approximated as a cylinder ~ q * (pi * d) * l.
func (roundReduction) InsulationMM2(e *element.Element) (float64, error) {
	d, err := e.RequireDim(types.DimDiameter)
	if err != nil {
		return 0, err
	}
	circumference := math.Pi * (d + 2*e.InsulationMM)
	return e.Quantity * circumference * e.Dim(types.DimLength), nil
}

func (roundReduction) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return surfaceCost(e, pl.PipeMetalM2).InexactFloat64(), nil
}

// flatRoundReduction transitions a rectangular duct onto a round tube.
// The insulation envelope and the metal rate both take the larger of
// the rectangular and round candidates, and the piece carries one
// flange and one fitting surcharge.
type flatRoundReduction struct{}

func (flatRoundReduction) ID() string        { return "flat_round_reduction" }
func (flatRoundReduction) FixedUnit() string { return types.UnitPiece }

func (flatRoundReduction) RequiredDims() []string {
	return []string{
		types.DimDiameter, types.DimWidth, types.DimHeight,
		types.DimLength, types.DimSurface,
	}
}

func (flatRoundReduction) Match(row types.Row) bool {
	return row.Name == "Redukce obdélník-roura"
}

func (flatRoundReduction) ParseSpec(*element.Element) error { return nil }

// Hollow frustum, approximated as the larger envelope ~ q * c * l.
func (flatRoundReduction) InsulationMM2(e *element.Element) (float64, error) {
	circumference := math.Max(
		math.Pi*(e.Dim(types.DimDiameter)+2*e.InsulationMM),
		2*(e.Dim(types.DimWidth)+e.Dim(types.DimHeight)+4*e.InsulationMM),
	)
	return e.Quantity * circumference * e.Dim(types.DimLength), nil
}

func (flatRoundReduction) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	rate := decimal.Max(pl.PipeFittingMetalM2, pl.SheetMetalM2)
	return surfaceCost(e, rate).Add(pl.Flange).Add(pl.PipeFittingPiece).InexactFloat64(), nil
}
