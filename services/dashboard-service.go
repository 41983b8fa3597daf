package services

import (
	"time"

	"golang.org/x/exp/slices"

	"studio-portal/backend/planner-service/models"
)

// ArtistLoad is the task count attributed to one artist, projects and
// social combined.
type ArtistLoad struct {
	Artist string `json:"artist"`
	Count  int    `json:"count"`
}

// DashboardSummary is the read-only aggregate behind the dashboard
// view, recomputed from the current task set on every request.
type DashboardSummary struct {
	TotalTasks   int           `json:"totalTasks"`
	ProjectCount int           `json:"projectCount"`
	SocialCount  int           `json:"socialCount"`
	Completed    int           `json:"completed"`
	DueThisWeek  []models.Task `json:"dueThisWeek"`
	Workload     []ArtistLoad  `json:"workload"`
}

// BuildDashboard derives the dashboard aggregates. A task counts as
// completed when its last phase sits at 100 percent; "due this week"
// means a deadline strictly between now and seven days out.
func BuildDashboard(tasks []models.Task, now time.Time) DashboardSummary {
	summary := DashboardSummary{
		TotalTasks:  len(tasks),
		DueThisWeek: []models.Task{},
	}
	weekOut := now.Add(7 * 24 * time.Hour)

	load := map[string]int{}
	for _, t := range tasks {
		if t.Type == models.TypeSocial {
			summary.SocialCount++
		} else {
			summary.ProjectCount++
		}
		if t.IsCompleted() {
			summary.Completed++
		}
		if t.Deadline.After(now) && t.Deadline.Before(weekOut) {
			summary.DueThisWeek = append(summary.DueThisWeek, t)
		}
		load[t.Artist]++
	}

	for artist, count := range load {
		summary.Workload = append(summary.Workload, ArtistLoad{Artist: artist, Count: count})
	}
	slices.SortFunc(summary.Workload, func(a, b ArtistLoad) int {
		if a.Artist < b.Artist {
			return -1
		}
		if a.Artist > b.Artist {
			return 1
		}
		return 0
	})

	return summary
}

// SocialBoard splits social assets into the two pipeline columns.
type SocialBoard struct {
	InProduction []models.Task `json:"inProduction"`
	Ready        []models.Task `json:"ready"`
}

// BuildSocialBoard partitions social tasks on their first phase's
// progress: under 100 is still in production, at 100 ready to post.
func BuildSocialBoard(tasks []models.Task) SocialBoard {
	board := SocialBoard{
		InProduction: []models.Task{},
		Ready:        []models.Task{},
	}
	for _, t := range tasks {
		if t.Type != models.TypeSocial || len(t.Phases) == 0 {
			continue
		}
		if t.Phases[0].Progress < 100 {
			board.InProduction = append(board.InProduction, t)
		} else {
			board.Ready = append(board.Ready, t)
		}
	}
	return board
}
