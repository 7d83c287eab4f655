// Package shape - round tube shapes
package shape

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"duct-cost/core/element"
	"duct-cost/core/pricing"
	"duct-cost/core/types"
	"duct-cost/internal/errors"
)

// roundTube is a straight round tube: cut ad hoc, measured in meters.
type roundTube struct{}

func (roundTube) ID() string        { return "round_tube" }
func (roundTube) FixedUnit() string { return types.UnitLinearMeter }

func (roundTube) RequiredDims() []string {
	return []string{types.DimDiameter, types.DimSurface}
}

func (roundTube) Match(row types.Row) bool {
	return row.Name == "Roura"
}

func (roundTube) ParseSpec(*element.Element) error { return nil }

// Hollow cylinder ~ pi * d * l, one meter of tube per quantity unit.
func (roundTube) InsulationMM2(e *element.Element) (float64, error) {
	lengthMM := 1000 * e.Quantity
	return math.Pi * (e.Dim(types.DimDiameter) + 2*e.InsulationMM) * lengthMM, nil
}

func (roundTube) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return surfaceCost(e, pl.PipeMetalM2).InexactFloat64(), nil
}

// dampedRoundTube is a ready-made round silencer: the spec text carries
// the acoustic lining thickness as the third slash-separated number.
type dampedRoundTube struct{}

var acousticPattern = regexp.MustCompile(`\d+/\d+/(\d+)`)

func (dampedRoundTube) ID() string        { return "damped_round_tube" }
func (dampedRoundTube) FixedUnit() string { return types.UnitPiece }

func (dampedRoundTube) RequiredDims() []string {
	return []string{types.DimWidth, types.DimHeight, types.DimLength, types.DimSurface}
}

func (dampedRoundTube) Match(row types.Row) bool {
	return row.Name == "Tlumič hluku, kulatý"
}

// ParseSpec folds the declared width/height pair into a diameter and
// reads the lining thickness. A disagreeing pair is flagged, width wins.
func (dampedRoundTube) ParseSpec(e *element.Element) error {
	w := e.Dim(types.DimWidth)
	if w != e.Dim(types.DimHeight) {
		e.AddIssue("ambiguous diameter")
	}
	e.SetDim(types.DimDiameter, w)
	e.ClearDim(types.DimWidth)
	e.ClearDim(types.DimHeight)

	m := acousticPattern.FindStringSubmatch(e.Spec)
	if m == nil {
		e.AddFailure("failed to read acoustic lining thickness",
			errors.SpecParse("no lining token in spec", nil))
		return nil
	}
	lining, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		e.AddFailure("failed to read acoustic lining thickness",
			errors.SpecParse("bad lining token in spec", err))
		return nil
	}
	e.SetDim(types.DimAcoustic, lining)
	return nil
}

// Hollow cylinder ~ q * pi * d * l, lining added under the wrap.
func (dampedRoundTube) InsulationMM2(e *element.Element) (float64, error) {
	lining, err := e.RequireDim(types.DimAcoustic)
	if err != nil {
		return 0, err
	}
	circumference := math.Pi * (e.Dim(types.DimDiameter) + 2*(e.InsulationMM+lining))
	return e.Quantity * circumference * e.Dim(types.DimLength), nil
}

func (dampedRoundTube) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return element.CatalogPrice(e, pl)
}

// roundTubeJoint is a short coupling tube inserted into two adjoining
// tubes.
type roundTubeJoint struct{}

func (roundTubeJoint) ID() string        { return "round_tube_joint" }
func (roundTubeJoint) FixedUnit() string { return types.UnitPiece }

func (roundTubeJoint) RequiredDims() []string {
	return []string{types.DimDiameter, types.DimSurface}
}

func (roundTubeJoint) Match(row types.Row) bool {
	return row.Name != "" && strings.Contains("Vsuvka do potrubí", row.Name)
}

func (roundTubeJoint) ParseSpec(*element.Element) error { return nil }

// Completely encapsulated by the adjoining elements.
func (roundTubeJoint) InsulationMM2(*element.Element) (float64, error) {
	return 0, nil
}

func (roundTubeJoint) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return surfaceCost(e, pl.PipeMetalM2).InexactFloat64(), nil
}
