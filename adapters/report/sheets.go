package report

import (
	"math"
	"sort"
	"strconv"
	"unicode"

	"github.com/xuri/excelize/v2"

	"duct-cost/core/types"
	"duct-cost/internal/errors"
)

var inventoryOrder = []string{
	"position", "name", "spec", "quantity", "unit", "pn", "unit_price", "price",
}

var shoppingOrder = []string{"name", "spec", "quantity", "unit", "pn"}

type inventoryKey struct {
	System   string
	Position string
	Name     string
	Spec     string
	Unit     string
	PN       string
}

type inventoryLine struct {
	inventoryKey
	Quantity float64
	Price    float64
}

// aggregateInventory sums quantity and price over identical positions
// and orders the lines by system, then naturally by position, so "1.2"
// sorts before "1.10".
func aggregateInventory(records []types.Record) []inventoryLine {
	index := make(map[inventoryKey]int)
	var lines []inventoryLine
	for _, r := range records {
		k := inventoryKey{r.System, r.Position, r.Name, r.Spec, r.Unit, r.PN}
		i, ok := index[k]
		if !ok {
			i = len(lines)
			index[k] = i
			lines = append(lines, inventoryLine{inventoryKey: k})
		}
		lines[i].Quantity += r.Quantity
		lines[i].Price += r.Price
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].System != lines[j].System {
			return lines[i].System < lines[j].System
		}
		return naturalLess(lines[i].Position, lines[j].Position)
	})
	return lines
}

// WriteInventory writes the per-system inventory sheet: one banner row
// per system followed by its aggregated positions.
func (s *Summarizer) WriteInventory(records []types.Record) error {
	row, err := s.newSummarySheet(SheetInventory, 2)
	if err != nil {
		return err
	}

	for c, field := range inventoryOrder {
		if err := s.writeCell(SheetInventory, c+1, row, columnLabels[field], s.styleBold); err != nil {
			return err
		}
	}
	row++

	lines := aggregateInventory(records)
	lastSystem := ""
	for _, line := range lines {
		if line.System != lastSystem {
			lastSystem = line.System
			row++
			for c := range inventoryOrder {
				v := ""
				if c == 1 {
					v = line.System
				}
				if err := s.writeCell(SheetInventory, c+1, row, v, s.styleBold); err != nil {
					return err
				}
			}
			row++
		}

		// A zero quantity leaves the unit price blank, not infinite.
		unitPrice := math.NaN()
		if line.Quantity != 0 {
			unitPrice = line.Price / line.Quantity
		}
		cells := []interface{}{
			line.Position,
			line.Name,
			line.Spec,
			roundCell(line.Quantity, 2),
			line.Unit,
			line.PN,
			roundCell(unitPrice, 2),
			roundCell(line.Price, 2),
		}
		for c, v := range cells {
			if err := s.writeCell(SheetInventory, c+1, row, v, s.styleFine); err != nil {
				return err
			}
		}
		row++
	}

	return s.setWidths(SheetInventory, []float64{8, 35, 40, 8, 8, 12, 14, 14})
}

type shoppingKey struct {
	Name string
	Spec string
	PN   string
	Unit string
}

type shoppingLine struct {
	shoppingKey
	Quantity float64
}

func aggregateShopping(records []types.Record) []shoppingLine {
	index := make(map[shoppingKey]int)
	var lines []shoppingLine
	for _, r := range records {
		k := shoppingKey{r.Name, r.Spec, r.PN, r.Unit}
		i, ok := index[k]
		if !ok {
			i = len(lines)
			index[k] = i
			lines = append(lines, shoppingLine{shoppingKey: k})
		}
		lines[i].Quantity += r.Quantity
	}
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if ka, kb := sortKey(a.Name), sortKey(b.Name); ka != kb {
			return ka < kb
		}
		if ka, kb := sortKey(a.Spec), sortKey(b.Spec); ka != kb {
			return ka < kb
		}
		if ka, kb := sortKey(a.PN), sortKey(b.PN); ka != kb {
			return ka < kb
		}
		return sortKey(a.Unit) < sortKey(b.Unit)
	})
	return lines
}

// WriteShoppingList writes the overall shopping list: quantities summed
// over the whole project, grouped under each element name.
func (s *Summarizer) WriteShoppingList(records []types.Record) error {
	row, err := s.newSummarySheet(SheetShopping, 1)
	if err != nil {
		return err
	}

	for c, field := range shoppingOrder {
		if err := s.writeCell(SheetShopping, c+1, row, columnLabels[field], s.styleBold); err != nil {
			return err
		}
	}
	row++

	lines := aggregateShopping(records)
	for i, line := range lines {
		name := ""
		if i == 0 || lines[i-1].Name != line.Name {
			name = line.Name
		}
		nameStyle := 0
		if i == len(lines)-1 || lines[i+1].Name != line.Name {
			nameStyle = s.styleFine
		}
		if err := s.writeCell(SheetShopping, 1, row, name, nameStyle); err != nil {
			return err
		}
		cells := []interface{}{
			line.Spec,
			roundCell(line.Quantity, 1),
			line.Unit,
			line.PN,
		}
		for c, v := range cells {
			if err := s.writeCell(SheetShopping, c+2, row, v, s.styleFine); err != nil {
				return err
			}
		}
		row++
	}

	return s.setWidths(SheetShopping, []float64{35, 40, 8, 8, 12})
}

func (s *Summarizer) setWidths(sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.Report("bad column number", err)
		}
		if err := s.f.SetColWidth(sheet, col, col, w); err != nil {
			return errors.Report("cannot set column width", err)
		}
	}
	return nil
}

// naturalLess compares strings with embedded numbers numerically.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		at, an, aNum := naturalToken(&a)
		bt, bn, bNum := naturalToken(&b)
		switch {
		case aNum && bNum:
			if an != bn {
				return an < bn
			}
		case aNum != bNum:
			return at < bt
		default:
			if at != bt {
				return at < bt
			}
		}
	}
	return a == "" && b != ""
}

// naturalToken consumes one digit or non-digit run from *s.
func naturalToken(s *string) (text string, num int, isNum bool) {
	runes := []rune(*s)
	isNum = unicode.IsDigit(runes[0])
	i := 1
	for i < len(runes) && unicode.IsDigit(runes[i]) == isNum {
		i++
	}
	text = string(runes[:i])
	*s = string(runes[i:])
	if isNum {
		num, _ = strconv.Atoi(text)
	}
	return text, num, isNum
}
