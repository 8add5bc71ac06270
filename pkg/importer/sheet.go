package importer

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName    = "ShippingSchedule"
	HeaderRow    = 3
	FirstDataRow = 4
	ColumnCount  = 8
)

// Column positions, 1-based as in the workbook.
const (
	colCustomerCode = iota + 1
	colCustomerName
	colTransCd
	colCollect
	colPrepare
	colLoading
	colWeekday
	colCutOff
)

type cellRef struct{ row, col int }

// Cell is one worksheet cell: Text as Excel displays it, Raw as stored
// (numbers and dates as serials).
type Cell struct {
	Text string
	Raw  string
}

func (c Cell) Blank() bool {
	return strings.TrimSpace(c.Text) == "" && strings.TrimSpace(c.Raw) == ""
}

// Grid is an in-memory copy of a worksheet with merged ranges resolved to
// their top-left anchor on request.
type Grid struct {
	text    [][]string
	raw     [][]string
	anchors map[cellRef]cellRef
}

// FindSheet returns the schedule worksheet name, matched case-insensitively.
func FindSheet(f *excelize.File) (string, bool) {
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(name, SheetName) {
			return name, true
		}
	}
	return "", false
}

func LoadGrid(f *excelize.File, sheet string) (*Grid, error) {
	text, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	g := &Grid{text: text, raw: raw, anchors: map[cellRef]cellRef{}}
	for _, m := range merges {
		sc, sr, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			return nil, err
		}
		ec, er, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			return nil, err
		}
		anchor := cellRef{sr, sc}
		for r := sr; r <= er; r++ {
			for c := sc; c <= ec; c++ {
				if r != sr || c != sc {
					g.anchors[cellRef{r, c}] = anchor
				}
			}
		}
	}
	return g, nil
}

// Rows is the index of the last row that holds anything.
func (g *Grid) Rows() int {
	n := len(g.text)
	if len(g.raw) > n {
		n = len(g.raw)
	}
	return n
}

func (g *Grid) Cell(row, col int) Cell {
	return Cell{Text: at(g.text, row, col), Raw: at(g.raw, row, col)}
}

// Merged returns the anchor's value when (row, col) lies inside a merged range.
func (g *Grid) Merged(row, col int) Cell {
	if a, ok := g.anchors[cellRef{row, col}]; ok {
		return g.Cell(a.row, a.col)
	}
	return g.Cell(row, col)
}

// RowEmpty reports whether all eight schedule columns of row are blank.
// Merged ranges are not followed.
func (g *Grid) RowEmpty(row int) bool {
	for col := 1; col <= ColumnCount; col++ {
		if !g.Cell(row, col).Blank() {
			return false
		}
	}
	return true
}

// LastDataRow trims trailing empty rows.
func (g *Grid) LastDataRow() int {
	n := g.Rows()
	for n >= FirstDataRow && g.RowEmpty(n) {
		n--
	}
	return n
}

func at(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}
