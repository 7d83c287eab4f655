// Package report writes the priced summary workbook: a header sheet,
// an overall shopping list and a per-system inventory, formatted the
// way the supply department prints them.
package report

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"duct-cost/adapters/export"
	"duct-cost/internal/errors"
)

// Output sheet names.
const (
	SheetHeader    = "Hlavička"
	SheetShopping  = "Souhrn celkový"
	SheetInventory = "Souhrn za systém"
)

// Czech column labels of the summary sheets.
var columnLabels = map[string]string{
	"position":   "Č. pozice",
	"name":       "Název",
	"spec":       "Typ",
	"quantity":   "Množství",
	"unit":       "Jednotka",
	"pn":         "PN",
	"price":      "Cena celkem",
	"unit_price": "Cena za jednotku",
}

// Summarizer assembles one summary workbook. Create it, write the
// sheets, then WriteTo a destination.
type Summarizer struct {
	f      *excelize.File
	header export.Header

	pageHeader string
	author     string
	today      time.Time

	styleBold        int
	styleFine        int
	styleLeft        int
	styleRight       int
	styleTopLeft     int
	styleTopRight    int
	styleBottomLeft  int
	styleBottomRight int
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithPageHeader sets the text printed at the top of every page.
func WithPageHeader(text string) Option {
	return func(s *Summarizer) { s.pageHeader = text }
}

// WithAuthor fills the "vypracoval:" line of the header box.
func WithAuthor(name string) Option {
	return func(s *Summarizer) { s.author = name }
}

// NewSummarizer creates a workbook holding the given project header.
func NewSummarizer(header export.Header, opts ...Option) (*Summarizer, error) {
	s := &Summarizer{
		f:      excelize.NewFile(),
		header: header,
		today:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.initStyles(); err != nil {
		return nil, errors.Report("cannot create workbook styles", err)
	}
	if err := s.writeHeaderSheet(); err != nil {
		return nil, err
	}
	return s, nil
}

const (
	boldLine = 2
	fineLine = 1
)

func (s *Summarizer) initStyles() error {
	mk := func(style *excelize.Style) (int, error) {
		return s.f.NewStyle(style)
	}
	border := func(edge string, width int) excelize.Border {
		return excelize.Border{Type: edge, Style: width, Color: "000000"}
	}

	var err error
	if s.styleBold, err = mk(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{border("bottom", boldLine)},
	}); err != nil {
		return err
	}
	if s.styleFine, err = mk(&excelize.Style{
		Border: []excelize.Border{border("bottom", fineLine)},
	}); err != nil {
		return err
	}
	if s.styleLeft, err = mk(&excelize.Style{
		Border: []excelize.Border{border("left", boldLine)},
	}); err != nil {
		return err
	}
	if s.styleRight, err = mk(&excelize.Style{
		Border: []excelize.Border{border("right", boldLine)},
	}); err != nil {
		return err
	}
	if s.styleTopLeft, err = mk(&excelize.Style{
		Border: []excelize.Border{border("top", boldLine), border("left", boldLine)},
	}); err != nil {
		return err
	}
	if s.styleTopRight, err = mk(&excelize.Style{
		Border: []excelize.Border{border("top", boldLine), border("right", boldLine)},
	}); err != nil {
		return err
	}
	if s.styleBottomLeft, err = mk(&excelize.Style{
		Border: []excelize.Border{border("bottom", boldLine), border("left", boldLine)},
	}); err != nil {
		return err
	}
	s.styleBottomRight, err = mk(&excelize.Style{
		Border: []excelize.Border{border("bottom", boldLine), border("right", boldLine)},
	})
	return err
}

// writeHeaderSheet stores the project header as a plain input sheet so
// a re-uploaded report round-trips through the loader.
func (s *Summarizer) writeHeaderSheet() error {
	if err := s.f.SetSheetName("Sheet1", SheetHeader); err != nil {
		return errors.Report("cannot rename header sheet", err)
	}
	cells := [][]interface{}{
		{"zakázka:", "stavba:", "č. zakázky:"},
		{s.header.Order, s.header.Site, s.header.OrderNumber},
	}
	for r, row := range cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return errors.Report("bad header cell", err)
			}
			if err := s.f.SetCellValue(SheetHeader, cell, v); err != nil {
				return errors.Report("cannot write header sheet", err)
			}
		}
	}
	return nil
}

// newSummarySheet creates a print-ready sheet with the framed header
// box and returns the first free row (1-based).
func (s *Summarizer) newSummarySheet(name string, headerCol int) (int, error) {
	if _, err := s.f.NewSheet(name); err != nil {
		return 0, errors.Report("cannot create sheet "+name, err)
	}
	if err := s.f.SetHeaderFooter(name, &excelize.HeaderFooterOptions{
		OddHeader: "&C" + s.pageHeader,
		OddFooter: "&CStrana &P z &N",
	}); err != nil {
		return 0, errors.Report("cannot set page header", err)
	}

	box := [][2]string{
		{"zakázka:", s.header.Order},
		{"stavba:", s.header.Site},
		{"č. zakázky:", s.header.OrderNumber},
		{"vypracoval:", s.author},
		{"dne:", s.today.Format("2/1/2006")},
	}
	row := 2
	for i, kv := range box {
		keyStyle, valStyle := s.styleLeft, s.styleRight
		switch i {
		case 0:
			keyStyle, valStyle = s.styleTopLeft, s.styleTopRight
		case len(box) - 1:
			keyStyle, valStyle = s.styleBottomLeft, s.styleBottomRight
		}
		if err := s.writeCell(name, headerCol, row, kv[0], keyStyle); err != nil {
			return 0, err
		}
		if err := s.writeCell(name, headerCol+1, row, kv[1], valStyle); err != nil {
			return 0, err
		}
		row++
	}
	return row + 1, nil
}

func (s *Summarizer) writeCell(sheet string, col, row int, v interface{}, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Report("bad cell coordinates", err)
	}
	if err := s.f.SetCellValue(sheet, cell, v); err != nil {
		return errors.Report("cannot write cell", err)
	}
	if style != 0 {
		if err := s.f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return errors.Report("cannot style cell", err)
		}
	}
	return nil
}

// WriteTo saves the workbook.
func (s *Summarizer) WriteTo(w io.Writer) (int64, error) {
	return s.f.WriteTo(w)
}

// Save writes the workbook to a file.
func (s *Summarizer) Save(path string) error {
	if err := s.f.SaveAs(path); err != nil {
		return errors.Report("cannot save report", err)
	}
	return nil
}

// Close releases the workbook resources.
func (s *Summarizer) Close() error {
	return s.f.Close()
}

// roundCell formats an amount for the summary cells; NaN prints blank
// the way the supply sheets always have.
func roundCell(v float64, places int32) interface{} {
	if math.IsNaN(v) {
		return ""
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// sortKey gives the case- and accent-insensitive ordering used by the
// shopping list.
func sortKey(s string) string {
	return strings.ToLower(norm.NFKD.String(s))
}
