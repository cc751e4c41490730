package statement

import (
	"log/slog"
	"strings"

	"github.com/extracto-dev/extracto/internal/grid"
)

// sentinel is the first-cell substring that marks the row preceding each
// movements table in a Bancolombia export.
const sentinel = "movimientos"

// boundaryCol is the column whose null value closes an open table.
const boundaryCol = 5

// Segment is a half-open row range [Start, End) into the source grid.
// Start is one past the sentinel row; End is the first row whose boundary
// column is null.
type Segment struct {
	Start int
	End   int
}

type scanState int

const (
	stateSearching scanState = iota
	stateInTable
)

// Segments scans the grid top to bottom and returns the embedded table
// ranges in encounter order. A table still open when the grid ends is
// discarded without being emitted.
func Segments(g grid.Grid, logger *slog.Logger) []Segment {
	var segs []Segment
	state := stateSearching
	start := 0

	for i := 0; i < g.Rows(); i++ {
		switch state {
		case stateSearching:
			first, ok := g.Cell(i, 0)
			if ok && strings.Contains(strings.ToLower(first), sentinel) {
				logger.Info("table start found", slog.Int("row", i))
				state = stateInTable
				start = i + 1
			}
		case stateInTable:
			if _, ok := g.Cell(i, boundaryCol); !ok {
				logger.Info("table end found", slog.Int("row", i))
				segs = append(segs, Segment{Start: start, End: i})
				state = stateSearching
			}
		}
	}

	if state == stateInTable {
		logger.Warn("discarding table with no terminating row", slog.Int("start", start))
	}
	return segs
}

// Merge concatenates the segments' rows into one combined table,
// preserving row order within and across segments.
func Merge(g grid.Grid, segs []Segment) Table {
	var rows [][]string
	for _, s := range segs {
		for i := s.Start; i < s.End; i++ {
			rows = append(rows, g[i])
		}
	}
	return Table{Rows: rows}
}
