package models

import "time"

type TaskType string

const (
	TypeProject TaskType = "project"
	TypeSocial  TaskType = "social"
)

type PhaseColor string

const (
	ColorGreen  PhaseColor = "green"
	ColorYellow PhaseColor = "yellow"
	ColorRed    PhaseColor = "red"
	ColorBlue   PhaseColor = "blue"
	ColorOrange PhaseColor = "orange"
	ColorPurple PhaseColor = "purple"
	ColorSocial PhaseColor = "social"
)

// FillerColors is the cycle applied to phases before the final two.
var FillerColors = []PhaseColor{ColorGreen, ColorBlue, ColorPurple, ColorOrange}

// Platforms a social asset can be scheduled for.
var Platforms = []string{"Instagram", "TikTok", "YouTube", "Twitter/X", "LinkedIn"}

// Phase is a sub-interval of its task's date range. Its implicit start is
// the previous phase's end date (or the task's start date for the first).
type Phase struct {
	ID       string     `json:"id" bson:"id"`
	Name     string     `json:"name" bson:"name"`
	EndDate  time.Time  `json:"endDate" bson:"endDate"`
	Progress int        `json:"progress" bson:"progress"`
	Color    PhaseColor `json:"color" bson:"color"`
}

type Task struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Type      TaskType  `json:"type" bson:"type"`
	Artist    string    `json:"artist" bson:"artist"`
	Name      string    `json:"name" bson:"name"`
	Briefing  string    `json:"briefing" bson:"briefing"`
	FolderURL string    `json:"folderUrl" bson:"folderUrl"`
	StartDate time.Time `json:"startDate" bson:"startDate"`
	Deadline  time.Time `json:"deadline" bson:"deadline"`
	Platform  string    `json:"platform,omitempty" bson:"platform,omitempty"`
	Phases    []Phase   `json:"phases" bson:"phases"`
}

// Clone returns a copy whose phase slice does not alias the receiver's.
func (t Task) Clone() Task {
	out := t
	out.Phases = append([]Phase(nil), t.Phases...)
	return out
}

// LastPhase returns the final phase by stored order, or nil when empty.
func (t *Task) LastPhase() *Phase {
	if len(t.Phases) == 0 {
		return nil
	}
	return &t.Phases[len(t.Phases)-1]
}

// IsCompleted reports whether the last phase has reached 100 percent.
func (t *Task) IsCompleted() bool {
	last := t.LastPhase()
	return last != nil && last.Progress == 100
}
