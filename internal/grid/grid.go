package grid

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is the raw cell matrix read from a statement workbook. Rows keep
// the spreadsheet's order; trailing blank cells are not padded, so a cell
// lookup past a row's length reads as null.
type Grid [][]string

// Cell returns the trimmed value at (row, col). ok is false when the cell
// is out of range or blank, the spreadsheet equivalent of a null value.
func (g Grid) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(g) {
		return "", false
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	v := strings.TrimSpace(r[col])
	if v == "" {
		return "", false
	}
	return v, true
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int { return len(g) }

// Load reads the first sheet of an xlsx workbook into a Grid.
func Load(path string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	return Grid(rows), nil
}

// WriteTable writes a single-sheet workbook with a header row followed by
// data rows. Nil cells are left empty; everything else is written with its
// native type so numeric cells stay numeric when reopened.
func WriteTable(path string, headers []string, rows [][]any) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir %s: %w", dir, err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for j, h := range headers {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", j, err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header %q: %w", h, err)
		}
	}

	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing cell (%d,%d): %w", i, j, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}
