package core

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a monetary value the way the dashboard displays it:
// pt-BR grouping and decimal separators with the real symbol, e.g.
// "R$ 1.234,56".
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Float64()
	return brlPrinter.Sprintf("R$ %.2f", f)
}
