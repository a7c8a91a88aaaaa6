package pipeline

import "opyta/internal/core"

// Filtering applies the sidebar criteria as successive narrowing passes.
// Each pass is skipped when its selector is pass-through (see
// core.FilterSpec); relative record order is always preserved. The passes
// are independent predicates, so their order does not affect the result.

// FilterRevenues narrows revenues by client, project and received date.
func FilterRevenues(projects []core.Project, revenues []core.RevenueRecord, spec core.FilterSpec) []core.RevenueRecord {
	codes := clientCodes(projects, spec)
	out := make([]core.RevenueRecord, 0, len(revenues))
	for _, r := range revenues {
		if !matchProject(r.ProjectCode, codes, spec) {
			continue
		}
		if spec.FiltersDate() && !r.DateReceived.Between(spec.DateStart, spec.DateEnd) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterExpenses narrows expenses by client, project and paid date.
func FilterExpenses(projects []core.Project, expenses []core.ExpenseRecord, spec core.FilterSpec) []core.ExpenseRecord {
	codes := clientCodes(projects, spec)
	out := make([]core.ExpenseRecord, 0, len(expenses))
	for _, e := range expenses {
		if !matchProject(e.ProjectCode, codes, spec) {
			continue
		}
		if spec.FiltersDate() && !e.DatePaid.Between(spec.DateStart, spec.DateEnd) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterCosts narrows costs by date only; costs carry no project reference,
// so the client and project passes do not apply to them.
func FilterCosts(costs []core.CostRecord, spec core.FilterSpec) []core.CostRecord {
	if !spec.FiltersDate() {
		out := make([]core.CostRecord, len(costs))
		copy(out, costs)
		return out
	}
	out := make([]core.CostRecord, 0, len(costs))
	for _, c := range costs {
		if c.Date.Between(spec.DateStart, spec.DateEnd) {
			out = append(out, c)
		}
	}
	return out
}

// clientCodes resolves the client selector to the set of project codes
// belonging to that client. Returns nil when the client pass is skipped.
func clientCodes(projects []core.Project, spec core.FilterSpec) map[string]struct{} {
	if !spec.FiltersClient() {
		return nil
	}
	codes := make(map[string]struct{})
	for _, p := range projects {
		if p.Client == spec.Client {
			codes[p.Code] = struct{}{}
		}
	}
	return codes
}

func matchProject(code string, clientCodes map[string]struct{}, spec core.FilterSpec) bool {
	if clientCodes != nil {
		if _, ok := clientCodes[code]; !ok {
			return false
		}
	}
	if spec.FiltersProject() && code != spec.ProjectCode {
		return false
	}
	return true
}
