package pipeline

import (
	"github.com/shopspring/decimal"

	"opyta/internal/core"
)

var hundred = decimal.NewFromInt(100)

// TrackGoals evaluates revenue-target achievement per project against the
// filtered revenue set. Projects without a strictly positive target are not
// evaluated at all (they are absent from the result, not reported as 0%).
// Classification is binary: at or above 100% is on-target, anything less is
// below-target.
func TrackGoals(projects []core.Project, revenues []core.RevenueRecord) []core.GoalStatus {
	achieved := make(map[string]decimal.Decimal)
	for _, r := range revenues {
		achieved[r.ProjectCode] = achieved[r.ProjectCode].Add(r.AmountReceived)
	}

	var out []core.GoalStatus
	for _, p := range projects {
		if !p.RevenueTarget.IsPositive() {
			continue
		}
		got := achieved[p.Code]
		percent := got.Div(p.RevenueTarget).Mul(hundred)
		status := core.GoalBelowTarget
		if percent.GreaterThanOrEqual(hundred) {
			status = core.GoalOnTarget
		}
		out = append(out, core.GoalStatus{
			ProjectCode: p.Code,
			Target:      p.RevenueTarget,
			Achieved:    got,
			Percent:     percent,
			Status:      status,
		})
	}
	return out
}
