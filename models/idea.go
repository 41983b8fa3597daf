package models

import "time"

type IdeaStage string

const (
	StageInbox      IdeaStage = "inbox"
	StageDeveloping IdeaStage = "developing"
	StageReady      IdeaStage = "ready"
)

// Stages in pipeline order. Transitions move one slot at a time.
var Stages = []IdeaStage{StageInbox, StageDeveloping, StageReady}

type Idea struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"userId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Stage       IdeaStage `json:"stage" bson:"stage"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// StageIndex returns the idea's position in the pipeline, -1 if unknown.
func (i *Idea) StageIndex() int {
	for idx, s := range Stages {
		if s == i.Stage {
			return idx
		}
	}
	return -1
}
