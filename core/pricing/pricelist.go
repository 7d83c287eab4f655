// Package pricing holds the material rate table used to cost elements.
package pricing

import (
	"github.com/shopspring/decimal"

	"duct-cost/internal/errors"
)

// Rate is one catalog entry: a unit price and the unit it is quoted in.
type Rate struct {
	Price decimal.Decimal
	Unit  string
}

// Pricelist is the closed set of material and operation rates the shape
// pricing formulas draw from, plus an optional part-number catalog for
// ready-made pieces. It is read-only after construction and safe for
// concurrent use.
type Pricelist struct {
	// SheetMetalM2 is the rate for sheet metal, per m2.
	SheetMetalM2 decimal.Decimal

	// Flange is the rate for one flange, per piece.
	Flange decimal.Decimal

	// PipeMetalM2 is the rate for round pipe metal, per m2.
	PipeMetalM2 decimal.Decimal

	// PipeFittingMetalM2 is the rate for round fitting metal, per m2.
	PipeFittingMetalM2 decimal.Decimal

	// PipeFittingPiece is the fixed per-piece fitting surcharge.
	PipeFittingPiece decimal.Decimal

	catalog map[string]Rate
}

// Default returns the standard rate table with an empty part-number
// catalog, so Lookup fails until catalog entries are added.
func Default() *Pricelist {
	return &Pricelist{
		SheetMetalM2:       decimal.NewFromInt(350),
		Flange:             decimal.NewFromInt(220),
		PipeMetalM2:        decimal.NewFromInt(585),
		PipeFittingMetalM2: decimal.NewFromInt(814),
		PipeFittingPiece:   decimal.NewFromInt(105),
	}
}

// WithCatalog returns a copy of the pricelist using the given
// part-number catalog.
func (p *Pricelist) WithCatalog(catalog map[string]Rate) *Pricelist {
	out := *p
	out.catalog = make(map[string]Rate, len(catalog))
	for pn, rate := range catalog {
		out.catalog[pn] = rate
	}
	return &out
}

// Lookup returns the catalog rate for a part number. Absence is signaled
// with a typed not-found error; callers degrade it to a NaN price rather
// than letting it escape.
func (p *Pricelist) Lookup(pn string) (Rate, error) {
	rate, ok := p.catalog[pn]
	if !ok {
		return Rate{}, errors.NotFound("pricelist entry", pn)
	}
	return rate, nil
}
