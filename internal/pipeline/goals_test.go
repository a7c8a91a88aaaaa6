package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opyta/internal/core"
)

func TestTrackGoalsClassification(t *testing.T) {
	projects := []core.Project{
		{Code: "P1", Client: "Acme", RevenueTarget: dec("1000")},
		{Code: "P2", Client: "Acme", RevenueTarget: dec("500")},
	}
	revenues := []core.RevenueRecord{
		revenue("P1", "Consultoria", "600", core.NewDate(2024, 1, 10)),
		revenue("P2", "Licença", "500", core.NewDate(2024, 1, 12)),
	}

	goals := TrackGoals(projects, revenues)

	require.Len(t, goals, 2)

	assert.Equal(t, "P1", goals[0].ProjectCode)
	assert.True(t, goals[0].Percent.Equal(dec("60")))
	assert.Equal(t, core.GoalBelowTarget, goals[0].Status)

	// Exactly 100% counts as on-target.
	assert.Equal(t, "P2", goals[1].ProjectCode)
	assert.True(t, goals[1].Percent.Equal(dec("100")))
	assert.Equal(t, core.GoalOnTarget, goals[1].Status)
}

func TestTrackGoalsExcludesProjectsWithoutTarget(t *testing.T) {
	projects := []core.Project{
		{Code: "P1", Client: "Acme", RevenueTarget: dec("0")},
		{Code: "P2", Client: "Acme"},
		{Code: "P3", Client: "Acme", RevenueTarget: dec("-10")},
	}
	revenues := []core.RevenueRecord{
		revenue("P1", "Consultoria", "600", core.NewDate(2024, 1, 10)),
	}

	goals := TrackGoals(projects, revenues)

	assert.Empty(t, goals, "projects without a positive target are not evaluated")
}

func TestTrackGoalsOverachievement(t *testing.T) {
	projects := []core.Project{
		{Code: "P1", Client: "Acme", RevenueTarget: dec("400")},
	}
	revenues := []core.RevenueRecord{
		revenue("P1", "Consultoria", "600", core.NewDate(2024, 1, 10)),
	}

	goals := TrackGoals(projects, revenues)

	require.Len(t, goals, 1)
	assert.True(t, goals[0].Percent.Equal(dec("150")))
	assert.Equal(t, core.GoalOnTarget, goals[0].Status)
}

func TestTrackGoalsNoMatchingRevenue(t *testing.T) {
	projects := []core.Project{
		{Code: "P1", Client: "Acme", RevenueTarget: dec("1000")},
	}

	goals := TrackGoals(projects, nil)

	require.Len(t, goals, 1)
	assert.True(t, goals[0].Achieved.IsZero())
	assert.True(t, goals[0].Percent.IsZero())
	assert.Equal(t, core.GoalBelowTarget, goals[0].Status)
}
