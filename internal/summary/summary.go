// Package summary aggregates normalized transactions into the
// recurrence-ranked table fed to the advisor and written as the summary
// workbook.
package summary

import (
	"slices"

	"github.com/extracto-dev/extracto/internal/model"
)

// Summarize groups transactions by description, summing valid amounts and
// counting every row (null amounts count toward recurrence but not the
// total). Groups keep first-seen order, then sort stably by signed total,
// descending: gains first, the largest expenses last. Transactions with a
// null description are not grouped.
func Summarize(txns []model.Transaction) []model.SummaryRow {
	index := make(map[string]int)
	var rows []model.SummaryRow

	for _, txn := range txns {
		if txn.Description == "" {
			continue
		}
		i, ok := index[txn.Description]
		if !ok {
			i = len(rows)
			index[txn.Description] = i
			rows = append(rows, model.SummaryRow{Description: txn.Description})
		}
		rows[i].Recurrence++
		if txn.Amount.Valid {
			rows[i].Total = rows[i].Total.Add(txn.Amount.Decimal)
		}
	}

	slices.SortStableFunc(rows, func(a, b model.SummaryRow) int {
		return b.Total.Cmp(a.Total)
	})
	return rows
}
