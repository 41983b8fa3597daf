package models

// PhaseDraft is one phase row of the project task form. EndDate is the
// raw input value; an empty string falls back to the task deadline.
type PhaseDraft struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	EndDate  string `json:"endDate"`
	Progress int    `json:"progress"`
}

// ProjectTaskDraft is the project task form as submitted. ID is empty on
// create and set on edit. SourceIdeaID links a save back to the idea it
// was promoted from; that idea is deleted only after the save succeeds.
type ProjectTaskDraft struct {
	ID           string       `json:"id,omitempty"`
	TaskName     string       `json:"taskName"`
	Artist       string       `json:"artist"`
	Briefing     string       `json:"briefing"`
	FolderURL    string       `json:"folderUrl"`
	StartDate    string       `json:"startDate"`
	Deadline     string       `json:"deadline"`
	Phases       []PhaseDraft `json:"phases"`
	SourceIdeaID string       `json:"sourceIdeaId,omitempty"`
}

// SocialTaskDraft is the social asset form as submitted.
type SocialTaskDraft struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	Platform  string `json:"platform"`
	Briefing  string `json:"briefing"`
	FolderURL string `json:"folderUrl"`
	StartDate string `json:"startDate"`
	Deadline  string `json:"deadline"`
}

// IdeaPrefill is the payload handed to the project task form when an
// idea is promoted out of the ready column.
type IdeaPrefill struct {
	IdeaID   string `json:"ideaId"`
	Name     string `json:"name"`
	Briefing string `json:"briefing"`
}
