// Package shape - elbow shapes
//
// Both elbows come out of the export under the same name; a round elbow
// declares its diameter in the spec text while a flat one declares its
// side lengths, so the marker substring is the documented way to tell
// them apart.
package shape

import (
	"math"
	"strings"

	"duct-cost/core/element"
	"duct-cost/core/pricing"
	"duct-cost/core/types"
)

// roundElbow is a curved round tube; the spec text supplies the bend
// radius and angle.
type roundElbow struct{}

func (roundElbow) ID() string        { return "round_elbow" }
func (roundElbow) FixedUnit() string { return types.UnitPiece }

func (roundElbow) RequiredDims() []string {
	return []string{types.DimDiameter, types.DimSurface}
}

func (roundElbow) Match(row types.Row) bool {
	return row.Name == "Koleno" && strings.Contains(row.Spec, "D=")
}

func (roundElbow) ParseSpec(e *element.Element) error {
	return bindSpecDims(e,
		specDim{"R", types.DimRadius},
		specDim{"a", types.DimAngle},
	)
}

// Hollow cylindrical arc ~ q * (a / 360) * (2 * pi * r) * (pi * d).
func (roundElbow) InsulationMM2(e *element.Element) (float64, error) {
	radius, err := e.RequireDim(types.DimRadius)
	if err != nil {
		return 0, err
	}
	angle, err := e.RequireDim(types.DimAngle)
	if err != nil {
		return 0, err
	}
	d := e.Dim(types.DimDiameter)
	arcLen := (angle / 360) * 2 * math.Pi * (radius + d/2 + e.InsulationMM)
	circumference := math.Pi * (d + 2*e.InsulationMM)
	return e.Quantity * arcLen * circumference, nil
}

func (roundElbow) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return surfaceCost(e, pl.PipeFittingMetalM2).Add(pl.PipeFittingPiece).InexactFloat64(), nil
}

// flatElbow is a curved rectangular duct with flanges.
type flatElbow struct{}

func (flatElbow) ID() string        { return "flat_elbow" }
func (flatElbow) FixedUnit() string { return types.UnitPiece }

func (flatElbow) RequiredDims() []string {
	return []string{types.DimWidth, types.DimHeight, types.DimSurface}
}

func (flatElbow) Match(row types.Row) bool {
	return row.Name == "Koleno" && strings.Contains(row.Spec, "A=")
}

func (flatElbow) ParseSpec(e *element.Element) error {
	return bindSpecDims(e,
		specDim{"R", types.DimRadius},
		specDim{"a", types.DimAngle},
	)
}

// Hollow flat arc ~ q * (a / 360) * (2 * pi * r) * 2 * (w + h).
func (flatElbow) InsulationMM2(e *element.Element) (float64, error) {
	radius, err := e.RequireDim(types.DimRadius)
	if err != nil {
		return 0, err
	}
	angle, err := e.RequireDim(types.DimAngle)
	if err != nil {
		return 0, err
	}
	w, h := e.Dim(types.DimWidth), e.Dim(types.DimHeight)
	arcLen := (angle / 360) * 2 * math.Pi * (radius + w + e.InsulationMM)
	circumference := 2 * (w + h + 4*e.InsulationMM)
	return e.Quantity * arcLen * circumference, nil
}

func (flatElbow) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	flanges := pl.Flange.Mul(two)
	return surfaceCost(e, pl.SheetMetalM2).Add(flanges).InexactFloat64(), nil
}
