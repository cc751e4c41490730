package commands

import (
	"log/slog"
	"strings"

	"github.com/extracto-dev/extracto/internal/grid"
	"github.com/extracto-dev/extracto/internal/model"
	"github.com/extracto-dev/extracto/internal/statement"
	"github.com/extracto-dev/extracto/internal/summary"
)

// summaryHeaders is the schema of the summary workbook.
var summaryHeaders = []string{"descripción", "valor_sum", "recurrencia"}

// pipelineResult holds the artifacts of one extraction run.
type pipelineResult struct {
	normalized statement.Normalized
	summary    []model.SummaryRow
}

// runPipeline executes load → segment → merge → normalize → aggregate and
// writes the cleaned and summary workbooks. A nil result with a nil error
// means no tables were found; nothing is written in that case.
func runPipeline(inputPath, cleanPath, summaryPath string, logger *slog.Logger) (*pipelineResult, error) {
	g, err := grid.Load(inputPath)
	if err != nil {
		return nil, err
	}
	logger.Info("statement loaded", slog.String("path", inputPath), slog.Int("rows", g.Rows()))

	segs := statement.Segments(g, logger)
	if len(segs) == 0 {
		logger.Warn("no tables found in statement", slog.String("path", inputPath))
		return nil, nil
	}

	combined := statement.Merge(g, segs)
	normalized, err := statement.Normalize(combined, logger)
	if err != nil {
		return nil, err
	}
	txns, err := normalized.Transactions()
	if err != nil {
		return nil, err
	}
	rows := summary.Summarize(txns)

	if err := writeClean(cleanPath, normalized); err != nil {
		return nil, err
	}
	if err := writeSummary(summaryPath, rows); err != nil {
		return nil, err
	}
	logger.Info("tables written",
		slog.String("clean", cleanPath),
		slog.String("summary", summaryPath),
		slog.Int("transactions", len(txns)),
		slog.Int("groups", len(rows)))

	return &pipelineResult{normalized: normalized, summary: rows}, nil
}

// writeClean writes the normalized table; the amount column is written
// numerically, null amounts stay empty.
func writeClean(path string, n statement.Normalized) error {
	rows := make([][]any, len(n.Rows))
	for i, row := range n.Rows {
		out := make([]any, len(n.Headers))
		for j := range n.Headers {
			if j == n.AmountCol {
				if a := n.Amounts[i]; a.Valid {
					out[j] = a.Decimal.InexactFloat64()
				}
				continue
			}
			if j < len(row) && strings.TrimSpace(row[j]) != "" {
				out[j] = row[j]
			}
		}
		rows[i] = out
	}
	return grid.WriteTable(path, n.Headers, rows)
}

func writeSummary(path string, rows []model.SummaryRow) error {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any{r.Description, r.Total.InexactFloat64(), r.Recurrence}
	}
	return grid.WriteTable(path, summaryHeaders, out)
}
