// Package pipeline implements the shared dashboard pipeline: normalization
// of raw worksheet rows into typed records, filter application, aggregate
// totals, tax computation and goal tracking. Every function is pure; derived
// views never mutate their inputs.
package pipeline

import (
	"strings"
	"time"

	"opyta/internal/core"
)

// Normalize coerces the five raw worksheets into a typed snapshot. No row is
// ever dropped: unparsable amounts degrade to zero and unparsable dates to
// the missing date, so a half-broken spreadsheet still produces a usable
// dashboard. Normalizing already-clean data is a fixed point.
func Normalize(raw core.RawTables) core.Snapshot {
	return core.Snapshot{
		Projects:  normalizeProjects(raw.Projects),
		Revenues:  normalizeRevenues(raw.Revenues),
		Expenses:  normalizeExpenses(raw.Expenses),
		Costs:     normalizeCosts(raw.Costs),
		TaxParams: normalizeTaxParams(raw.TaxParams),
		LoadedAt:  time.Now().UTC(),
	}
}

func normalizeProjects(t core.RawTable) []core.Project {
	out := make([]core.Project, 0, len(t))
	for _, row := range t {
		out = append(out, core.Project{
			Code:          field(row, core.ColProjectCode),
			Client:        field(row, core.ColProjectClient),
			RevenueTarget: core.ParseAmount(row[core.ColRevenueTarget]),
		})
	}
	return out
}

func normalizeRevenues(t core.RawTable) []core.RevenueRecord {
	out := make([]core.RevenueRecord, 0, len(t))
	for _, row := range t {
		out = append(out, core.RevenueRecord{
			ProjectCode:    field(row, core.ColRecordProject),
			Category:       field(row, core.ColCategory),
			AmountReceived: core.ParseAmount(row[core.ColAmountReceived]),
			DateReceived:   core.ParseDate(row[core.ColDateReceived]),
		})
	}
	return out
}

func normalizeExpenses(t core.RawTable) []core.ExpenseRecord {
	out := make([]core.ExpenseRecord, 0, len(t))
	for _, row := range t {
		out = append(out, core.ExpenseRecord{
			ProjectCode: field(row, core.ColRecordProject),
			Category:    field(row, core.ColCategory),
			AmountPaid:  core.ParseAmount(row[core.ColAmountPaid]),
			DatePaid:    core.ParseDate(row[core.ColDatePaid]),
		})
	}
	return out
}

func normalizeCosts(t core.RawTable) []core.CostRecord {
	out := make([]core.CostRecord, 0, len(t))
	for _, row := range t {
		out = append(out, core.CostRecord{
			Category: field(row, core.ColCategory),
			Amount:   core.ParseAmount(row[core.ColCostAmount]),
			Date:     core.ParseDate(row[core.ColCostDate]),
		})
	}
	return out
}

func normalizeTaxParams(t core.RawTable) []core.TaxParameter {
	out := make([]core.TaxParameter, 0, len(t))
	for _, row := range t {
		out = append(out, core.TaxParameter{
			Name: field(row, core.ColTaxName),
			Rate: core.ParseAmount(row[core.ColTaxRate]),
		})
	}
	return out
}

func field(row core.RawRow, key string) string {
	return strings.TrimSpace(row[key])
}
