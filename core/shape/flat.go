// Package shape - flat (rectangular) duct shapes
package shape

import (
	"fmt"

	"github.com/shopspring/decimal"

	"duct-cost/core/element"
	"duct-cost/core/pricing"
	"duct-cost/core/types"
)

// flatDuct is a custom-made rectangular duct with flanges. The export
// row measures it in meters but counts the manufactured pieces in a
// separate duct-count field, which becomes the effective quantity.
type flatDuct struct{}

func (flatDuct) ID() string        { return "flat_duct" }
func (flatDuct) FixedUnit() string { return types.UnitLinearMeter }

func (flatDuct) RequiredDims() []string {
	return []string{
		types.DimWidth, types.DimHeight, types.DimLength,
		types.DimDuctCount, types.DimSurface,
	}
}

func (flatDuct) Match(row types.Row) bool {
	return row.Name == "Potrubí"
}

// ParseSpec overrides the quantity with the piece count and embeds the
// piece length into the spec text.
func (flatDuct) ParseSpec(e *element.Element) error {
	e.Quantity = e.Dim(types.DimDuctCount)
	e.ClearDim(types.DimDuctCount)
	e.Unit = types.UnitPiece
	e.Spec = fmt.Sprintf("%s x %d", e.Spec, int(e.Dim(types.DimLength)))
	return nil
}

// Hollow box ~ q * 2 * (w + h) * l.
func (flatDuct) InsulationMM2(e *element.Element) (float64, error) {
	circumference := 2 * (e.Dim(types.DimWidth) + e.Dim(types.DimHeight) + 4*e.InsulationMM)
	return e.Quantity * circumference * e.Dim(types.DimLength), nil
}

func (flatDuct) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	flanges := decimal.NewFromFloat(2 * e.Quantity).Mul(pl.Flange)
	return surfaceCost(e, pl.SheetMetalM2).Add(flanges).InexactFloat64(), nil
}

// floorFlatDuct refines flatDuct: the two stock floor-channel profiles,
// cut ad hoc and measured in meters like the round tube.
type floorFlatDuct struct{}

// The stock profiles a floor channel comes in, width x height.
var floorProfiles = [][2]float64{{160, 40}, {200, 50}}

func (floorFlatDuct) ID() string        { return "floor_flat_duct" }
func (floorFlatDuct) FixedUnit() string { return types.UnitLinearMeter }

func (floorFlatDuct) RequiredDims() []string {
	return []string{types.DimWidth, types.DimHeight, types.DimSurface}
}

func (floorFlatDuct) Match(row types.Row) bool {
	if row.Name != "Potrubí" {
		return false
	}
	w, _ := row.Dim(types.DimWidth)
	h, _ := row.Dim(types.DimHeight)
	for _, p := range floorProfiles {
		if w == p[0] && h == p[1] {
			return true
		}
	}
	return false
}

func (floorFlatDuct) ParseSpec(e *element.Element) error {
	e.Name = "Podlahový kanál"
	return nil
}

// Hollow box ~ 2 * (w + h) * l, length following quantity in meters.
func (floorFlatDuct) InsulationMM2(e *element.Element) (float64, error) {
	lengthMM := 1000 * e.Quantity
	circumference := 2 * (e.Dim(types.DimWidth) + e.Dim(types.DimHeight) + 4*e.InsulationMM)
	return circumference * lengthMM, nil
}

func (floorFlatDuct) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return surfaceCost(e, pl.SheetMetalM2).InexactFloat64(), nil
}

// dampedFlatDuct is a ready-made cell silencer with flat-duct geometry,
// priced per piece from the part-number catalog.
type dampedFlatDuct struct{}

func (dampedFlatDuct) ID() string        { return "damped_flat_duct" }
func (dampedFlatDuct) FixedUnit() string { return types.UnitPiece }

func (dampedFlatDuct) RequiredDims() []string {
	return []string{types.DimWidth, types.DimHeight, types.DimLength, types.DimSurface}
}

func (dampedFlatDuct) Match(row types.Row) bool {
	return row.Name == "Tlumič hluku, buňkový"
}

func (dampedFlatDuct) ParseSpec(*element.Element) error { return nil }

// Hollow box ~ q * 2 * (w + h) * l.
func (dampedFlatDuct) InsulationMM2(e *element.Element) (float64, error) {
	circumference := 2 * (e.Dim(types.DimWidth) + e.Dim(types.DimHeight) + 4*e.InsulationMM)
	return e.Quantity * circumference * e.Dim(types.DimLength), nil
}

func (dampedFlatDuct) Price(e *element.Element, pl *pricing.Pricelist) (float64, error) {
	return element.CatalogPrice(e, pl)
}
