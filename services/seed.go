package services

import (
	"time"

	"studio-portal/backend/planner-service/models"
	"studio-portal/backend/planner-service/timeline"
)

// DefaultArtists seeds the roster of a brand-new account.
var DefaultArtists = []string{"Salini", "Jeki"}

// SeedTasks is the starter set persisted for a user with no stored
// tasks, so a new account never opens onto an empty timeline. Fixed ids
// keep re-seeding idempotent.
func SeedTasks(userID string, now time.Time) []models.Task {
	day := func(offset int) time.Time {
		return timeline.Normalize(now).AddDate(0, 0, offset)
	}

	return []models.Task{
		{
			ID:        "seed-1",
			UserID:    userID,
			Type:      models.TypeProject,
			Artist:    "Salini",
			Name:      "Xmas Guide",
			Briefing:  "Main campaign visual.",
			StartDate: day(-5),
			Deadline:  day(20),
			Phases: []models.Phase{
				{ID: "p1", Name: "Draft", EndDate: day(0), Color: models.ColorGreen, Progress: 100},
				{ID: "p2", Name: "Refine", EndDate: day(10), Color: models.ColorYellow, Progress: 40},
				{ID: "p3", Name: "Final", EndDate: day(20), Color: models.ColorRed, Progress: 0},
			},
		},
		{
			ID:        "seed-social-1",
			UserID:    userID,
			Type:      models.TypeSocial,
			Platform:  "Instagram",
			Artist:    "Salini",
			Name:      "Xmas Teaser Reel",
			Briefing:  "15s animation for IG Story",
			StartDate: day(5),
			Deadline:  day(12),
			Phases: []models.Phase{
				{ID: "sp1", Name: "Production", EndDate: day(12), Color: models.ColorSocial, Progress: 20},
			},
		},
	}
}
