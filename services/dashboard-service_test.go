package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-portal/backend/planner-service/models"
)

func dashDay(offset int) time.Time {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestBuildDashboard_CompletionIsLastPhaseAtHundred(t *testing.T) {
	tasks := []models.Task{
		{ID: "done", Artist: "Salini", Phases: []models.Phase{
			{ID: "p1", Progress: 0},
			{ID: "p2", Progress: 100},
		}},
		{ID: "open", Artist: "Salini", Phases: []models.Phase{
			{ID: "p1", Progress: 100},
			{ID: "p2", Progress: 40},
		}},
		{ID: "empty", Artist: "Jeki"},
	}

	summary := BuildDashboard(tasks, dashDay(0))

	assert.Equal(t, 1, summary.Completed)
}

func TestBuildDashboard_DueThisWeekIsStrict(t *testing.T) {
	now := dashDay(0)
	tasks := []models.Task{
		{ID: "soon", Artist: "Salini", Deadline: now.Add(3 * 24 * time.Hour)},
		{ID: "past", Artist: "Salini", Deadline: now.Add(-24 * time.Hour)},
		{ID: "exactly-week", Artist: "Salini", Deadline: now.Add(7 * 24 * time.Hour)},
		{ID: "far", Artist: "Salini", Deadline: now.Add(10 * 24 * time.Hour)},
	}

	summary := BuildDashboard(tasks, now)

	require.Len(t, summary.DueThisWeek, 1)
	assert.Equal(t, "soon", summary.DueThisWeek[0].ID)
}

func TestBuildDashboard_WorkloadCombinesTypes(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Artist: "Salini", Type: models.TypeProject},
		{ID: "t2", Artist: "Salini", Type: models.TypeSocial},
		{ID: "t3", Artist: "Jeki", Type: models.TypeProject},
	}

	summary := BuildDashboard(tasks, dashDay(0))

	assert.Equal(t, 3, summary.TotalTasks)
	assert.Equal(t, 2, summary.ProjectCount)
	assert.Equal(t, 1, summary.SocialCount)
	require.Len(t, summary.Workload, 2)
	assert.Equal(t, ArtistLoad{Artist: "Jeki", Count: 1}, summary.Workload[0])
	assert.Equal(t, ArtistLoad{Artist: "Salini", Count: 2}, summary.Workload[1])
}

func TestBuildSocialBoard_SplitsOnFirstPhaseProgress(t *testing.T) {
	tasks := []models.Task{
		{ID: "wip", Type: models.TypeSocial, Phases: []models.Phase{{ID: "p1", Progress: 20}}},
		{ID: "done", Type: models.TypeSocial, Phases: []models.Phase{{ID: "p1", Progress: 100}}},
		{ID: "project", Type: models.TypeProject, Phases: []models.Phase{{ID: "p1", Progress: 100}}},
	}

	board := BuildSocialBoard(tasks)

	require.Len(t, board.InProduction, 1)
	assert.Equal(t, "wip", board.InProduction[0].ID)
	require.Len(t, board.Ready, 1)
	assert.Equal(t, "done", board.Ready[0].ID)
}

func TestStrategyCycles_Geometry(t *testing.T) {
	cycles := StrategyCycles()

	require.Len(t, cycles, 4)
	first := cycles[0]
	assert.Equal(t, "Summer Readiness", first.Name)
	assert.Equal(t, 0.0, first.Left)
	assert.Equal(t, 25.0, first.Width)
	assert.InDelta(t, 50.0, first.LaunchLeft, 0.01)

	last := cycles[3]
	assert.Equal(t, 75.0, last.Left)
	assert.Equal(t, 25.0, last.Width)
}

func TestCycleForMonth(t *testing.T) {
	cycle := CycleForMonth(7)

	require.NotNil(t, cycle)
	assert.Equal(t, "Holiday Gifting", cycle.Name)
	assert.Nil(t, CycleForMonth(12))
}
