package model

import "github.com/shopspring/decimal"

// Transaction is one normalized statement row.
type Transaction struct {
	Description string
	Amount      decimal.NullDecimal // invalid = unparseable or blank cell
	Fields      []string            // passthrough cells in original column order
}

// SummaryRow is the per-description aggregate used to rank spending.
type SummaryRow struct {
	Description string
	Total       decimal.Decimal // sum of valid amounts; negative = expense
	Recurrence  int             // row count, null amounts included
}
