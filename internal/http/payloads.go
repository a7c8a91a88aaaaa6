package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"opyta/internal/core"
	"opyta/internal/services"
)

// JSON payloads. Monetary values appear twice: the raw decimal string for
// machine consumers and the pt-BR formatted rendering the dashboard shows.

type moneyPayload struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

type totalsPayload struct {
	Revenue  moneyPayload `json:"revenue"`
	Expense  moneyPayload `json:"expense"`
	Cost     moneyPayload `json:"cost"`
	Profit   moneyPayload `json:"profit"`
	CashFlow moneyPayload `json:"cash_flow"`
}

type monthlyFlowPayload struct {
	Month   string `json:"month"` // YYYY-MM
	Revenue string `json:"revenue"`
	Expense string `json:"expense"`
	Result  string `json:"result"`
}

type categoryPayload struct {
	Category string       `json:"category"`
	Total    moneyPayload `json:"total"`
}

type goalPayload struct {
	ProjectCode string `json:"project_code"`
	Target      string `json:"target"`
	Achieved    string `json:"achieved"`
	Percent     string `json:"percent"`
	Status      string `json:"status"`
}

type ledgerPayload struct {
	PriorBalance   moneyPayload `json:"prior_balance"`
	CurrentBalance moneyPayload `json:"current_balance"`
}

type filterPayload struct {
	Client  string `json:"client"`
	Project string `json:"project"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

type overviewPayload struct {
	Filter            filterPayload        `json:"filter"`
	Totals            totalsPayload        `json:"totals"`
	Monthly           []monthlyFlowPayload `json:"monthly"`
	RevenueCategories []categoryPayload    `json:"revenue_categories"`
	TopExpenses       []categoryPayload    `json:"top_expenses"`
	Goals             []goalPayload        `json:"goals"`
	Ledger            ledgerPayload        `json:"ledger"`
	Error             string               `json:"error,omitempty"`
}

type revenuePayload struct {
	ProjectCode string       `json:"project_code"`
	Category    string       `json:"category"`
	Amount      moneyPayload `json:"amount"`
	Date        string       `json:"date,omitempty"`
}

type expensePayload struct {
	ProjectCode string       `json:"project_code"`
	Category    string       `json:"category"`
	Amount      moneyPayload `json:"amount"`
	Date        string       `json:"date,omitempty"`
}

type recordsPayload struct {
	Revenues []revenuePayload `json:"revenues"`
	Expenses []expensePayload `json:"expenses"`
	Error    string           `json:"error,omitempty"`
}

func money(d decimal.Decimal) moneyPayload {
	return moneyPayload{Amount: d.String(), Formatted: core.FormatBRL(d)}
}

func buildOverviewPayload(spec core.FilterSpec, ov services.Overview) overviewPayload {
	p := overviewPayload{
		Filter: buildFilterPayload(spec),
		Totals: totalsPayload{
			Revenue:  money(ov.Totals.Revenue),
			Expense:  money(ov.Totals.Expense),
			Cost:     money(ov.Totals.Cost),
			Profit:   money(ov.Totals.Profit),
			CashFlow: money(ov.Totals.CashFlow),
		},
		Ledger: ledgerPayload{
			PriorBalance:   money(ov.Ledger.PriorBalance),
			CurrentBalance: money(ov.Ledger.CurrentBalance),
		},
	}
	for _, m := range ov.Monthly {
		p.Monthly = append(p.Monthly, monthlyFlowPayload{
			Month:   fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
			Revenue: m.Revenue.String(),
			Expense: m.Expense.String(),
			Result:  m.Result.String(),
		})
	}
	for _, c := range ov.RevenueCategories {
		p.RevenueCategories = append(p.RevenueCategories, categoryPayload{Category: c.Category, Total: money(c.Total)})
	}
	for _, c := range ov.TopExpenses {
		p.TopExpenses = append(p.TopExpenses, categoryPayload{Category: c.Category, Total: money(c.Total)})
	}
	for _, g := range ov.Goals {
		p.Goals = append(p.Goals, goalPayload{
			ProjectCode: g.ProjectCode,
			Target:      g.Target.String(),
			Achieved:    g.Achieved.String(),
			Percent:     g.Percent.StringFixed(1),
			Status:      g.Status,
		})
	}
	return p
}

func buildRecordsPayload(recs services.Records) recordsPayload {
	var p recordsPayload
	for _, r := range recs.Revenues {
		p.Revenues = append(p.Revenues, revenuePayload{
			ProjectCode: r.ProjectCode,
			Category:    r.Category,
			Amount:      money(r.AmountReceived),
			Date:        formatDate(r.DateReceived),
		})
	}
	for _, e := range recs.Expenses {
		p.Expenses = append(p.Expenses, expensePayload{
			ProjectCode: e.ProjectCode,
			Category:    e.Category,
			Amount:      money(e.AmountPaid),
			Date:        formatDate(e.DatePaid),
		})
	}
	return p
}

func buildFilterPayload(spec core.FilterSpec) filterPayload {
	f := filterPayload{Client: orAll(spec.Client), Project: orAll(spec.ProjectCode)}
	if !spec.DateStart.IsEmpty() {
		f.Start = spec.DateStart.Format("2006-01-02")
	}
	if !spec.DateEnd.IsEmpty() {
		f.End = spec.DateEnd.Format("2006-01-02")
	}
	return f
}

func orAll(s string) string {
	if s == "" {
		return core.FilterAll
	}
	return s
}

func formatDate(d core.Date) string {
	if d.IsEmpty() {
		return ""
	}
	return d.Format("2006-01-02")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
