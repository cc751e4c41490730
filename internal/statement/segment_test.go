package statement

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extracto-dev/extracto/internal/grid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// dataRow builds a six-column row with a non-null boundary column.
func dataRow(desc string) []string {
	return []string{"2025-01-01", desc, "SUC", "0001", "-100.00", "5,000.00"}
}

func TestSegments_NoSentinel(t *testing.T) {
	g := grid.Grid{
		{"SALDO ANTERIOR", "", "", "", "", "1,000.00"},
		dataRow("NETFLIX"),
	}
	assert.Empty(t, Segments(g, testLogger()))
}

func TestSegments_SingleTable(t *testing.T) {
	g := grid.Grid{
		{"ESTADO DE CUENTA"},
		{"SALDO ANTERIOR"},
		{"Movimientos del periodo"},
		dataRow("NETFLIX"),
		dataRow("ARRIENDO"),
		dataRow("MERCADO"),
		dataRow("SALARIO"),
		dataRow("TAXI"),
		{"Total"},
	}

	segs := Segments(g, testLogger())
	require.Len(t, segs, 1)
	assert.Equal(t, Segment{Start: 3, End: 8}, segs[0])
}

func TestSegments_SentinelRowExcluded(t *testing.T) {
	g := grid.Grid{
		{"Movimientos"},
		dataRow("NETFLIX"),
		{"Total"},
	}

	segs := Segments(g, testLogger())
	require.Len(t, segs, 1)
	assert.Equal(t, Segment{Start: 1, End: 2}, segs[0])
}

func TestSegments_CaseInsensitiveSentinel(t *testing.T) {
	g := grid.Grid{
		{"MOVIMIENTOS DE LA CUENTA"},
		dataRow("NETFLIX"),
		{"Total"},
	}
	assert.Len(t, Segments(g, testLogger()), 1)
}

func TestSegments_UnterminatedTableDiscarded(t *testing.T) {
	g := grid.Grid{
		{"Movimientos del periodo"},
		dataRow("NETFLIX"),
		dataRow("ARRIENDO"),
	}
	assert.Empty(t, Segments(g, testLogger()))
}

func TestSegments_MultipleTables(t *testing.T) {
	g := grid.Grid{
		{"Movimientos enero"},
		dataRow("NETFLIX"),
		{"Total"},
		{"Movimientos febrero"},
		dataRow("ARRIENDO"),
		dataRow("MERCADO"),
		{"Total"},
	}

	segs := Segments(g, testLogger())
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Start: 1, End: 2}, segs[0])
	assert.Equal(t, Segment{Start: 4, End: 6}, segs[1])
}

func TestSegments_ShortRowIsNullBoundary(t *testing.T) {
	// A row whose boundary cell is blank, not just missing, also closes
	// the table.
	g := grid.Grid{
		{"Movimientos"},
		dataRow("NETFLIX"),
		{"Total", "", "", "", "", "   "},
	}

	segs := Segments(g, testLogger())
	require.Len(t, segs, 1)
	assert.Equal(t, Segment{Start: 1, End: 2}, segs[0])
}

func TestMerge_PreservesRowOrder(t *testing.T) {
	g := grid.Grid{
		{"Movimientos enero"},
		dataRow("NETFLIX"),
		{"Total"},
		{"Movimientos febrero"},
		dataRow("ARRIENDO"),
		{"Total"},
	}
	segs := Segments(g, testLogger())

	combined := Merge(g, segs)
	require.Len(t, combined.Rows, 2)
	assert.Equal(t, "NETFLIX", combined.Rows[0][1])
	assert.Equal(t, "ARRIENDO", combined.Rows[1][1])
}

func TestMerge_NoSegments(t *testing.T) {
	combined := Merge(grid.Grid{dataRow("NETFLIX")}, nil)
	assert.Empty(t, combined.Rows)
}
