package statement

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/extracto-dev/extracto/internal/model"
)

const (
	// headerMarker identifies header lines re-introduced by merging
	// originally separate tables, each of which carried its own "FECHA ..."
	// header row.
	headerMarker = "fecha"

	// namedAmountColumn selects the amount column by header when present;
	// the match is case-sensitive, so it never fires after headers have
	// been lower-cased and the positional fallback applies instead.
	namedAmountColumn = "Valor"

	// fallbackAmountColumn is the positional amount column.
	fallbackAmountColumn = 4

	descriptionColumn = "descripción"
	amountColumn      = "valor"
)

// Table is the untyped combined table assembled from one or more segments.
type Table struct {
	Rows [][]string
}

// Normalized is a header-bearing table with the amount column resolved and
// parsed. Rows and Amounts are parallel; cells other than the amount column
// pass through untouched.
type Normalized struct {
	Headers   []string
	Rows      [][]string
	AmountCol int
	Amounts   []decimal.NullDecimal
}

// Normalize promotes the combined table's first row to lower-cased column
// headers, drops repeated header lines, and parses every cell of the
// resolved amount column.
func Normalize(t Table, logger *slog.Logger) (Normalized, error) {
	if len(t.Rows) == 0 {
		return Normalized{}, fmt.Errorf("combined table has no header row")
	}

	headers := make([]string, len(t.Rows[0]))
	for i, h := range t.Rows[0] {
		headers[i] = strings.ToLower(h)
	}

	amountCol := resolveAmountColumn(headers)
	if amountCol >= len(headers) {
		return Normalized{}, fmt.Errorf("amount column %d out of range: table has %d columns", amountCol, len(headers))
	}

	// Drop repeated header lines. The first data row is kept
	// unconditionally, even when it matches.
	var rows [][]string
	for i, row := range t.Rows[1:] {
		if i > 0 && isRepeatedHeader(row) {
			continue
		}
		rows = append(rows, row)
	}

	amounts := make([]decimal.NullDecimal, len(rows))
	for i, row := range rows {
		raw, ok := cellAt(row, amountCol)
		amounts[i] = ParseAmount(raw, ok, logger)
	}

	return Normalized{
		Headers:   headers,
		Rows:      rows,
		AmountCol: amountCol,
		Amounts:   amounts,
	}, nil
}

// resolveAmountColumn picks the amount column once, by header name when an
// exact "Valor" header exists and by position otherwise. The resolved index
// is used for every later amount access.
func resolveAmountColumn(headers []string) int {
	for i, h := range headers {
		if h == namedAmountColumn {
			return i
		}
	}
	return fallbackAmountColumn
}

func isRepeatedHeader(row []string) bool {
	first, ok := cellAt(row, 0)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(first), headerMarker)
}

// cellAt reads a cell from a raw row with grid null semantics: out of
// range or blank after trimming means null.
func cellAt(row []string, col int) (string, bool) {
	if col < 0 || col >= len(row) {
		return "", false
	}
	v := strings.TrimSpace(row[col])
	if v == "" {
		return "", false
	}
	return v, true
}

// Transactions projects the normalized table into transaction records.
// Both the description and amount columns must exist by name; a table
// missing either cannot be aggregated and the error is fatal to the run.
func (n Normalized) Transactions() ([]model.Transaction, error) {
	descCol := -1
	amountSeen := false
	for i, h := range n.Headers {
		switch strings.TrimSpace(h) {
		case descriptionColumn:
			if descCol == -1 {
				descCol = i
			}
		case amountColumn:
			amountSeen = true
		}
	}
	if descCol == -1 {
		return nil, fmt.Errorf("normalized table is missing the %q column", descriptionColumn)
	}
	if !amountSeen {
		return nil, fmt.Errorf("normalized table is missing the %q column", amountColumn)
	}

	txns := make([]model.Transaction, len(n.Rows))
	for i, row := range n.Rows {
		desc, _ := cellAt(row, descCol)
		txns[i] = model.Transaction{
			Description: desc,
			Amount:      n.Amounts[i],
			Fields:      row,
		}
	}
	return txns, nil
}
