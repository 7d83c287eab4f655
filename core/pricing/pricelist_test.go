package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"duct-cost/internal/errors"
)

func TestDefaultRates(t *testing.T) {
	pl := Default()

	cases := []struct {
		name string
		got  decimal.Decimal
		want int64
	}{
		{"sheet metal", pl.SheetMetalM2, 350},
		{"flange", pl.Flange, 220},
		{"pipe metal", pl.PipeMetalM2, 585},
		{"pipe fitting metal", pl.PipeFittingMetalM2, 814},
		{"pipe fitting piece", pl.PipeFittingPiece, 105},
	}
	for _, c := range cases {
		if !c.got.Equal(decimal.NewFromInt(c.want)) {
			t.Errorf("%s: expected %d, got %s", c.name, c.want, c.got)
		}
	}
}

func TestLookupMissSignalsNotFound(t *testing.T) {
	pl := Default()

	_, err := pl.Lookup("TL-400")
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestLookupCatalogHit(t *testing.T) {
	pl := Default().WithCatalog(map[string]Rate{
		"TL-400": {Price: decimal.NewFromInt(1250), Unit: "ks"},
	})

	rate, err := pl.Lookup("TL-400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rate.Price.Equal(decimal.NewFromInt(1250)) || rate.Unit != "ks" {
		t.Errorf("unexpected rate: %+v", rate)
	}
}

func TestWithCatalogCopies(t *testing.T) {
	src := map[string]Rate{"A": {Price: decimal.NewFromInt(1), Unit: "ks"}}
	pl := Default().WithCatalog(src)

	delete(src, "A")
	if _, err := pl.Lookup("A"); err != nil {
		t.Errorf("catalog should not share the caller's map: %v", err)
	}
}
