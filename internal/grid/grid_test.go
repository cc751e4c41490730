package grid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	g := Grid{
		{"FECHA", "DESCRIPCIÓN", "", "   "},
		{"2025-01-01"},
	}

	v, ok := g.Cell(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "FECHA", v)

	_, ok = g.Cell(0, 2)
	assert.False(t, ok, "blank cell is null")

	_, ok = g.Cell(0, 3)
	assert.False(t, ok, "whitespace-only cell is null")

	_, ok = g.Cell(0, 9)
	assert.False(t, ok, "out-of-range column is null")

	_, ok = g.Cell(1, 5)
	assert.False(t, ok, "short row reads as null")

	_, ok = g.Cell(7, 0)
	assert.False(t, ok, "out-of-range row is null")
}

func TestCell_TrimsValue(t *testing.T) {
	g := Grid{{"  NETFLIX  "}}
	v, ok := g.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, "NETFLIX", v)
}

func TestWriteTableLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.xlsx")

	headers := []string{"descripción", "valor_sum", "recurrencia"}
	rows := [][]any{
		{"NETFLIX", -89800.0, 2},
		{"SALARIO", 2500000.0, 1},
		{"AJUSTE", nil, 1},
	}
	require.NoError(t, WriteTable(path, headers, rows))

	g, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, g.Rows())

	assert.Equal(t, headers, g[0])

	v, ok := g.Cell(1, 0)
	require.True(t, ok)
	assert.Equal(t, "NETFLIX", v)

	v, ok = g.Cell(1, 1)
	require.True(t, ok)
	assert.Equal(t, "-89800", v)

	v, ok = g.Cell(2, 1)
	require.True(t, ok)
	assert.Equal(t, "2500000", v)

	_, ok = g.Cell(3, 1)
	assert.False(t, ok, "nil cell stays null")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workbook")
}
