package timeline

import (
	"time"

	"golang.org/x/exp/slices"

	"studio-portal/backend/planner-service/models"
)

const unassigned = "Unassigned"

// PhaseSpan is one positioned phase bar. Task and phase ids let a client
// address a single phase for the commit-on-change progress editor.
type PhaseSpan struct {
	TaskID   string            `json:"taskId"`
	PhaseID  string            `json:"phaseId"`
	Name     string            `json:"name"`
	Color    models.PhaseColor `json:"color"`
	Progress int               `json:"progress"`
	Span
}

// TaskRow is one task with its visible phase bars.
type TaskRow struct {
	Task  models.Task `json:"task"`
	Spans []PhaseSpan `json:"spans"`
}

// ArtistGroup is one artist's lane on the timeline.
type ArtistGroup struct {
	Artist string    `json:"artist"`
	Tasks  []TaskRow `json:"tasks"`
}

// Layout is the full render state of the timeline for one viewport.
type Layout struct {
	ViewStart    time.Time     `json:"viewStart"`
	ViewEnd      time.Time     `json:"viewEnd"`
	Days         []time.Time   `json:"days"`
	Groups       []ArtistGroup `json:"groups"`
	TodayVisible bool          `json:"todayVisible"`
	TodayLeft    float64       `json:"todayLeft"`
}

// BuildLayout positions every task's phases inside the viewport. Tasks
// are grouped by artist, groups sorted alphabetically with "Unassigned"
// forced last, and each group's tasks sorted by ascending start date.
// Phases entirely outside the window are skipped.
func BuildLayout(tasks []models.Task, v Viewport, today time.Time) Layout {
	groups := map[string][]models.Task{}
	for _, t := range tasks {
		artist := t.Artist
		if artist == "" {
			artist = unassigned
		}
		groups[artist] = append(groups[artist], t)
	}

	artists := make([]string, 0, len(groups))
	for artist := range groups {
		artists = append(artists, artist)
	}
	slices.SortFunc(artists, func(a, b string) int {
		if a == unassigned {
			return 1
		}
		if b == unassigned {
			return -1
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})

	layout := Layout{
		ViewStart: v.Start,
		ViewEnd:   v.End(),
		Days:      v.Days(),
	}

	for _, artist := range artists {
		group := groups[artist]
		slices.SortFunc(group, func(a, b models.Task) int {
			return a.StartDate.Compare(b.StartDate)
		})

		rows := make([]TaskRow, 0, len(group))
		for _, task := range group {
			rows = append(rows, TaskRow{Task: task, Spans: phaseSpans(task, v)})
		}
		layout.Groups = append(layout.Groups, ArtistGroup{Artist: artist, Tasks: rows})
	}

	if span, ok := PositionInWindow(today, today, v.Start, v.End()); ok {
		layout.TodayVisible = true
		layout.TodayLeft = span.Left
	}

	return layout
}

// phaseSpans positions a task's phases. A phase starts where the prior
// one ended; the first starts at the task's start date.
func phaseSpans(task models.Task, v Viewport) []PhaseSpan {
	spans := make([]PhaseSpan, 0, len(task.Phases))
	for idx, phase := range task.Phases {
		start := task.StartDate
		if idx > 0 {
			start = task.Phases[idx-1].EndDate
		}
		span, ok := PositionInWindow(start, phase.EndDate, v.Start, v.End())
		if !ok {
			continue
		}
		spans = append(spans, PhaseSpan{
			TaskID:   task.ID,
			PhaseID:  phase.ID,
			Name:     phase.Name,
			Color:    phase.Color,
			Progress: phase.Progress,
			Span:     span,
		})
	}
	return spans
}
