package repositories

import (
	"context"
	"errors"

	"studio-portal/backend/planner-service/models"
)

var ErrNotFound = errors.New("record not found")

// TaskRepository is the gateway to the tasks collection. Records are
// scoped by owning user; upsert replaces the full record by id.
type TaskRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	Upsert(ctx context.Context, task models.Task) (models.Task, error)
	Delete(ctx context.Context, id, userID string) error
}

// IdeaRepository is the gateway to the ideas collection.
type IdeaRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Idea, error)
	Upsert(ctx context.Context, idea models.Idea) (models.Idea, error)
	Delete(ctx context.Context, id, userID string) error
}

// RosterRepository is the gateway to the artists collection. A missing
// roster reads as an empty one, never as an error.
type RosterRepository interface {
	Get(ctx context.Context, userID string) (models.Roster, error)
	Upsert(ctx context.Context, roster models.Roster) (models.Roster, error)
}
