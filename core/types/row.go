// Package types holds the shared data contracts of the costing core.
package types

import "math"

// Canonical units a priced element may be measured in.
const (
	UnitPiece       = "ks"
	UnitLinearMeter = "m"
	UnitSquareMeter = "m2"
)

// IsCanonicalUnit reports whether u is one of the three canonical units.
func IsCanonicalUnit(u string) bool {
	return u == UnitPiece || u == UnitLinearMeter || u == UnitSquareMeter
}

// Canonical names of the shape-dependent numeric fields.
const (
	DimDiameter  = "diameter_mm"
	DimWidth     = "width_mm"
	DimHeight    = "height_mm"
	DimLength    = "length_mm"
	DimSurface   = "surface_m2"
	DimDuctCount = "duct_count"

	// Derived during spec parsing, never present on an input row.
	DimRadius         = "radius_mm"
	DimAngle          = "angle_deg"
	DimAcoustic       = "acoustic_mm"
	DimBranchDiameter = "diameter3_mm"
	DimBranchLength   = "length3_mm"
)

// Row is one normalized line of a CAD export: the mandatory fields plus
// the shape-dependent numeric extras. A name absent from Extra means the
// source had no value there, which is distinct from an explicit zero.
type Row struct {
	System       string
	Position     string
	PN           string
	Name         string
	Spec         string
	Quantity     float64
	Unit         string
	InsulationMM float64

	Extra map[string]float64
}

// Dim returns a shape-dependent numeric field and whether it is present.
// NaN values count as absent.
func (r Row) Dim(name string) (float64, bool) {
	v, ok := r.Extra[name]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// SetDim sets a shape-dependent numeric field, allocating Extra if needed.
func (r *Row) SetDim(name string, v float64) {
	if r.Extra == nil {
		r.Extra = make(map[string]float64)
	}
	r.Extra[name] = v
}
