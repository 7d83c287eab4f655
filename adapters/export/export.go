// Package export loads CAD export files and normalizes them into the
// canonical row contract of the costing core.
//
// Two source formats exist: the raw CSV the design tool emits
// (Windows-1250, semicolon-separated, decimal comma) and a project
// workbook with a blueprint sheet, a manually supplemented sheet and an
// optional header sheet.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"duct-cost/core/types"
	"duct-cost/internal/errors"
)

// Workbook sheet names of a saved project.
const (
	SheetBlueprint = "Data z výkresu"
	SheetManual    = "Data doplněná"
	SheetHeader    = "Hlavička"
)

// Header is the project identification block of a workbook.
type Header struct {
	Order       string `json:"order"`
	Site        string `json:"site"`
	OrderNumber string `json:"order_number"`
}

// columnNames maps the export's column headers to canonical field names;
// columns not listed here are dropped.
var columnNames = map[string]string{
	"Systém":            "system",
	"Číslo":             "position",
	"PN":                "pn",
	"Název":             "name",
	"Typ":               "spec",
	"Insulation":        "insulation_mm",
	"izolace":           "insulation_manual_mm",
	"Vzduchovody, kusů": types.DimDuctCount,
	"Průměr":            types.DimDiameter,
	"Délka":             types.DimLength,
	"Šířka":             types.DimWidth,
	"Výška":             types.DimHeight,
	"Plocha":            types.DimSurface,
	"Součet":            "quantity",
	"--":                "unit",
}

// headerKeys maps the header sheet's labels to Header fields.
var headerKeys = map[string]func(*Header, string){
	"zakázka:":     func(h *Header, v string) { h.Order = v },
	"stavba:":      func(h *Header, v string) { h.Site = v },
	"č. zakázky:":  func(h *Header, v string) { h.OrderNumber = v },
}

// LoadFile reads a CSV or XLSX export by extension.
func LoadFile(path string) ([]types.Row, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, errors.Wrap(errors.TypeInput, "cannot open export file", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSV(f)
	}
	return ReadWorkbook(f)
}

// ReadCSV reads the raw design-tool export. The file carries blueprint
// rows only, so the manual set is empty and the header blank.
func ReadCSV(r io.Reader) ([]types.Row, Header, error) {
	cr := csv.NewReader(charmap.Windows1250.NewDecoder().Reader(r))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	table, err := cr.ReadAll()
	if err != nil {
		return nil, Header{}, errors.Wrap(errors.TypeInput, "cannot parse CSV export", err)
	}
	return Normalize(table), Header{}, nil
}

// ReadWorkbook reads a saved project workbook: blueprint and manual
// sheets concatenated, plus the header sheet when present.
func ReadWorkbook(r io.Reader) ([]types.Row, Header, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, Header{}, errors.Wrap(errors.TypeInput, "cannot open workbook", err)
	}
	defer f.Close()

	blueprint, err := f.GetRows(SheetBlueprint)
	if err != nil {
		return nil, Header{}, errors.Wrapf(errors.TypeInput, err, "workbook has no %q sheet", SheetBlueprint)
	}
	rows := Normalize(blueprint)

	// The manual sheet supplements the blueprint; a fresh workbook may
	// not have one yet.
	if manual, err := f.GetRows(SheetManual); err == nil {
		rows = append(rows, Normalize(manual)...)
	}

	var header Header
	if table, err := f.GetRows(SheetHeader); err == nil {
		header = ParseHeader(table)
	}
	return rows, header, nil
}

// Normalize turns a raw table (header row plus data rows) into
// canonical rows. Unknown columns are dropped, numeric cells with no
// value stay absent rather than zero, and the insulation thickness is
// filled from the manual column when the blueprint one is empty.
func Normalize(table [][]string) []types.Row {
	if len(table) == 0 {
		return nil
	}

	cols := make([]string, len(table[0]))
	for i, name := range table[0] {
		cols[i] = columnNames[strings.TrimSpace(name)]
	}

	var rows []types.Row
	for _, record := range table[1:] {
		if isBlank(record) {
			continue
		}
		var (
			row      types.Row
			insul    float64
			insulOK  bool
			manual   float64
			manualOK bool
		)
		for i, cell := range record {
			if i >= len(cols) {
				break
			}
			cell = strings.TrimSpace(cell)
			switch cols[i] {
			case "":
				// dropped column
			case "system":
				row.System = cell
			case "position":
				row.Position = cell
			case "pn":
				row.PN = cell
			case "name":
				row.Name = cell
			case "spec":
				row.Spec = cell
			case "unit":
				row.Unit = cell
			case "quantity":
				if v, ok := parseNumber(cell); ok {
					row.Quantity = v
				}
			case "insulation_mm":
				insul, insulOK = parseNumber(cell)
			case "insulation_manual_mm":
				manual, manualOK = parseNumber(cell)
			default:
				if v, ok := parseNumber(cell); ok {
					row.SetDim(cols[i], v)
				}
			}
		}
		switch {
		case insulOK:
			row.InsulationMM = insul
		case manualOK:
			row.InsulationMM = manual
		}
		rows = append(rows, row)
	}
	return rows
}

// ParseHeader reads the two-row header block written by the CAD export
// or by a previously generated report.
func ParseHeader(table [][]string) Header {
	var h Header
	if len(table) < 2 {
		return h
	}
	values := table[1]
	for i, key := range table[0] {
		if i >= len(values) {
			break
		}
		if set, ok := headerKeys[strings.TrimSpace(key)]; ok {
			set(&h, strings.TrimSpace(values[i]))
		}
	}
	return h
}

// parseNumber reads a cell with either decimal separator; an empty or
// non-numeric cell reports no value.
func parseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", "."))
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
