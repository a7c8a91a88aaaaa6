package pipeline

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"opyta/internal/core"
)

// ComputeTaxes derives one tax breakdown row per revenue record: each tax
// amount is the received amount times the tax rate, and TotalTax is the sum
// across all parameters. Row IDs are freshly generated on every invocation;
// everything else is deterministic for identical inputs. Empty revenues or
// empty parameters yield an empty result.
func ComputeTaxes(revenues []core.RevenueRecord, params []core.TaxParameter) []core.TaxRow {
	if len(revenues) == 0 || len(params) == 0 {
		return nil
	}
	rows := make([]core.TaxRow, 0, len(revenues))
	for _, r := range revenues {
		row := core.TaxRow{
			ID:            uuid.NewString(),
			ProjectCode:   r.ProjectCode,
			RevenueAmount: r.AmountReceived,
			Amounts:       make(map[string]decimal.Decimal, len(params)),
		}
		for _, p := range params {
			amount := r.AmountReceived.Mul(p.Rate)
			row.Amounts[p.Name] = amount
			row.TotalTax = row.TotalTax.Add(amount)
		}
		rows = append(rows, row)
	}
	return rows
}
