package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"opyta/internal/core"
)

// Summarize computes the headline totals over the given (already filtered)
// record sets. Cash flow deliberately excludes costs: it tracks realized
// revenue/expense movement only, while profit also absorbs fixed and
// variable costs.
func Summarize(revenues []core.RevenueRecord, expenses []core.ExpenseRecord, costs []core.CostRecord) core.Totals {
	var t core.Totals
	for _, r := range revenues {
		t.Revenue = t.Revenue.Add(r.AmountReceived)
	}
	for _, e := range expenses {
		t.Expense = t.Expense.Add(e.AmountPaid)
	}
	for _, c := range costs {
		t.Cost = t.Cost.Add(c.Amount)
	}
	t.CashFlow = t.Revenue.Sub(t.Expense)
	t.Profit = t.CashFlow.Sub(t.Cost)
	return t
}

// MonthlyFlows buckets revenues and expenses by calendar month. The index is
// dense: every month between the earliest and latest dated record across both
// series appears, zero-filled when one series has no records in it. Records
// without a date are excluded from the time series. Returns nil when neither
// series has a dated record.
func MonthlyFlows(revenues []core.RevenueRecord, expenses []core.ExpenseRecord) []core.MonthlyFlow {
	type key struct {
		year  int
		month time.Month
	}
	revSums := make(map[key]decimal.Decimal)
	expSums := make(map[key]decimal.Decimal)

	var minDate, maxDate core.Date
	observe := func(d core.Date) {
		if d.IsEmpty() {
			return
		}
		if minDate.IsEmpty() || d.Before(minDate.Time) {
			minDate = d
		}
		if maxDate.IsEmpty() || d.After(maxDate.Time) {
			maxDate = d
		}
	}

	for _, r := range revenues {
		if r.DateReceived.IsEmpty() {
			continue
		}
		observe(r.DateReceived)
		k := key{r.DateReceived.Year(), r.DateReceived.Month()}
		revSums[k] = revSums[k].Add(r.AmountReceived)
	}
	for _, e := range expenses {
		if e.DatePaid.IsEmpty() {
			continue
		}
		observe(e.DatePaid)
		k := key{e.DatePaid.Year(), e.DatePaid.Month()}
		expSums[k] = expSums[k].Add(e.AmountPaid)
	}
	if minDate.IsEmpty() {
		return nil
	}

	var out []core.MonthlyFlow
	cur := time.Date(minDate.Year(), minDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(maxDate.Year(), maxDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		k := key{cur.Year(), cur.Month()}
		flow := core.MonthlyFlow{
			Year:    cur.Year(),
			Month:   cur.Month(),
			Revenue: revSums[k],
			Expense: expSums[k],
		}
		flow.Result = flow.Revenue.Sub(flow.Expense)
		out = append(out, flow)
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

// RevenueByCategory sums received amounts per category in first-seen order.
// Only categories present in the input appear; there is no zero fill.
func RevenueByCategory(revenues []core.RevenueRecord) []core.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, r := range revenues {
		if _, seen := sums[r.Category]; !seen {
			order = append(order, r.Category)
		}
		sums[r.Category] = sums[r.Category].Add(r.AmountReceived)
	}
	return categoryTotals(order, sums)
}

// ExpenseByCategory sums paid amounts per category in first-seen order.
func ExpenseByCategory(expenses []core.ExpenseRecord) []core.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range expenses {
		if _, seen := sums[e.Category]; !seen {
			order = append(order, e.Category)
		}
		sums[e.Category] = sums[e.Category].Add(e.AmountPaid)
	}
	return categoryTotals(order, sums)
}

// TopExpenseCategories returns the n largest expense categories, highest
// total first. Ties keep first-seen order.
func TopExpenseCategories(expenses []core.ExpenseRecord, n int) []core.CategoryTotal {
	totals := ExpenseByCategory(expenses)
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	if n >= 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// Ledger computes the opening-balance view. PriorBalance sums every record
// dated strictly before the cutoff over revenues - expenses - costs;
// CurrentBalance carries it forward by the given period totals. The inputs
// here are the client/project-scoped but date-unfiltered collections: "prior"
// crosses the period's start boundary, not the client/project selection.
// A missing cutoff yields a zero prior balance.
func Ledger(revenues []core.RevenueRecord, expenses []core.ExpenseRecord, costs []core.CostRecord, cutoff core.Date, period core.Totals) core.LedgerView {
	var prior decimal.Decimal
	if !cutoff.IsEmpty() {
		for _, r := range revenues {
			if !r.DateReceived.IsEmpty() && r.DateReceived.Before(cutoff.Time) {
				prior = prior.Add(r.AmountReceived)
			}
		}
		for _, e := range expenses {
			if !e.DatePaid.IsEmpty() && e.DatePaid.Before(cutoff.Time) {
				prior = prior.Sub(e.AmountPaid)
			}
		}
		for _, c := range costs {
			if !c.Date.IsEmpty() && c.Date.Before(cutoff.Time) {
				prior = prior.Sub(c.Amount)
			}
		}
	}
	return core.LedgerView{
		PriorBalance:   prior,
		CurrentBalance: prior.Add(period.Profit),
	}
}

func categoryTotals(order []string, sums map[string]decimal.Decimal) []core.CategoryTotal {
	out := make([]core.CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, core.CategoryTotal{Category: cat, Total: sums[cat]})
	}
	return out
}
