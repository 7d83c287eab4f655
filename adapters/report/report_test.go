package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/xuri/excelize/v2"

	"duct-cost/adapters/export"
	"duct-cost/core/types"
)

func sampleRecords() []types.Record {
	return []types.Record{
		{System: "VZT1", Position: "1.10", Name: "Roura", Spec: "d 200",
			Quantity: 5, Unit: "m", PN: "", Price: 2925},
		{System: "VZT1", Position: "1.2", Name: "Roura", Spec: "d 200",
			Quantity: 3, Unit: "m", PN: "", Price: 1755},
		{System: "VZT2", Position: "2.1", Name: "Koleno", Spec: "D=250, R=200, a=90",
			Quantity: 2, Unit: "ks", PN: "", Price: math.NaN()},
	}
}

func buildWorkbook(t *testing.T, records []types.Record) *excelize.File {
	t.Helper()

	s, err := NewSummarizer(
		export.Header{Order: "Hala B", Site: "Brno", OrderNumber: "2024-017"},
		WithPageHeader("Vzduchotechnika Hala B"),
		WithAuthor("J. Novák"),
	)
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	defer s.Close()

	if err := s.WriteShoppingList(records); err != nil {
		t.Fatalf("WriteShoppingList: %v", err)
	}
	if err := s.WriteInventory(records); err != nil {
		t.Fatalf("WriteInventory: %v", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	return f
}

func TestWorkbookSheets(t *testing.T) {
	f := buildWorkbook(t, sampleRecords())
	defer f.Close()

	got := f.GetSheetList()
	want := map[string]bool{SheetHeader: true, SheetShopping: true, SheetInventory: true}
	for _, name := range got {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Fatalf("missing sheets %v in %v", want, got)
	}
}

func TestHeaderSheetRoundTrips(t *testing.T) {
	f := buildWorkbook(t, nil)
	defer f.Close()

	rows, err := f.GetRows(SheetHeader)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("header sheet has %d rows, want 2", len(rows))
	}
	hdr := export.ParseHeader(rows)
	if hdr.Order != "Hala B" || hdr.Site != "Brno" || hdr.OrderNumber != "2024-017" {
		t.Fatalf("round-tripped header = %+v", hdr)
	}
}

func TestInventoryAggregation(t *testing.T) {
	lines := aggregateInventory(sampleRecords())
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// Natural order within VZT1: position 1.2 before 1.10.
	if lines[0].Position != "1.2" || lines[1].Position != "1.10" {
		t.Fatalf("positions out of order: %q, %q", lines[0].Position, lines[1].Position)
	}
	if lines[2].System != "VZT2" {
		t.Fatalf("last line system = %q, want VZT2", lines[2].System)
	}
	if !math.IsNaN(lines[2].Price) {
		t.Fatalf("unpriced line price = %v, want NaN", lines[2].Price)
	}
}

func TestShoppingAggregation(t *testing.T) {
	lines := aggregateShopping(sampleRecords())
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Accent-insensitive sort: Koleno before Roura.
	if lines[0].Name != "Koleno" || lines[1].Name != "Roura" {
		t.Fatalf("names out of order: %q, %q", lines[0].Name, lines[1].Name)
	}
	if lines[1].Quantity != 8 {
		t.Fatalf("merged quantity = %v, want 8", lines[1].Quantity)
	}
}

func TestShoppingSortBreaksTiesOnUnit(t *testing.T) {
	records := []types.Record{
		{Name: "Roura", Spec: "d 200", PN: "R-200", Quantity: 2, Unit: "m"},
		{Name: "Roura", Spec: "d 200", PN: "R-200", Quantity: 1, Unit: "ks"},
	}
	lines := aggregateShopping(records)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Unit != "ks" || lines[1].Unit != "m" {
		t.Fatalf("units out of order: %q, %q", lines[0].Unit, lines[1].Unit)
	}
}

func TestNanPriceWritesBlank(t *testing.T) {
	f := buildWorkbook(t, sampleRecords())
	defer f.Close()

	rows, err := f.GetRows(SheetInventory)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	for _, row := range rows {
		for _, cell := range row {
			if cell == "NaN" {
				t.Fatal("NaN leaked into the inventory sheet")
			}
		}
	}
}

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1.2", "1.10", true},
		{"1.10", "1.2", false},
		{"2", "10", true},
		{"a10", "a9", false},
		{"1.1a", "1.1b", true},
		{"", "1", true},
		{"1", "1", false},
	}
	for _, tc := range cases {
		if got := naturalLess(tc.a, tc.b); got != tc.want {
			t.Errorf("naturalLess(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
