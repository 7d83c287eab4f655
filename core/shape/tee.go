// Package shape - tee junction
package shape

import (
	"math"

	"duct-cost/core/element"
	"duct-cost/core/pricing"
	"duct-cost/core/types"
)

// roundTee is a round tee junction; the spec text supplies the branch
// diameter, branch length and branch angle.
type roundTee struct{}

func (roundTee) ID() string        { return "round_tee" }
func (roundTee) FixedUnit() string { return types.UnitPiece }

func (roundTee) RequiredDims() []string {
	return []string{types.DimDiameter, types.DimLength, types.DimSurface}
}

func (roundTee) Match(row types.Row) bool {
	return row.Name == "T-kus"
}

func (roundTee) ParseSpec(e *element.Element) error {
	return bindSpecDims(e,
		specDim{"D3", types.DimBranchDiameter},
		specDim{"L3", types.DimBranchLength},
		specDim{"a", types.DimAngle},
	)
}

// Two cylinders, the branch shortened by half the main diameter so the
// junction is not counted twice ~ q * (pi * d * l + pi * d3 * l3').
func (roundTee) InsulationMM2(e *element.Element) (float64, error) {
	branchDiameter, err := e.RequireDim(types.DimBranchDiameter)
	if err != nil {
		return 0, err
	}
	branchLength, err := e.RequireDim(types.DimBranchLength)
	if err != nil {
		return 0, err
	}
	d := e.Dim(types.DimDiameter)
	main := math.Pi * (d + 2*e.InsulationMM) * e.Dim(types.DimLength)
	aux := math.Pi * (branchDiameter + 2*e.InsulationMM) * (branchLength - d/2)
	return e.Quantity * (main + aux), nil
}

func (roundTee) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return surfaceCost(e, pl.PipeFittingMetalM2).InexactFloat64(), nil
}
