package statement

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = []string{"$", "€", "£"}

// ParseAmount converts a raw statement cell into a decimal amount. ok is
// false when the cell was null. The function is total: any value that
// cannot be parsed yields an invalid NullDecimal and a diagnostic log
// line, never an error. Handled notations: currency symbols, thousands
// commas, trailing minus ("123.45-"), and parenthesized negatives ("(50)").
func ParseAmount(raw string, ok bool, logger *slog.Logger) decimal.NullDecimal {
	if !ok {
		return decimal.NullDecimal{}
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.NullDecimal{}
	}

	for _, sym := range currencySymbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, ",", "")

	// Accounting notation: "123.45-" means -123.45.
	if strings.HasSuffix(s, "-") {
		s = "-" + strings.TrimSpace(strings.TrimSuffix(s, "-"))
	}
	// Some exports wrap negatives in parentheses instead.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.TrimSpace(s[1:len(s)-1])
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		logger.Warn("unparseable amount",
			slog.String("raw", raw),
			slog.String("reason", err.Error()))
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
