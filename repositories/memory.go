package repositories

import (
	"context"
	"sync"

	"studio-portal/backend/planner-service/models"
)

// MemoryTaskRepository keeps tasks per user in insertion order. Used by
// tests and as a stand-in store for local development.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string][]models.Task
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[string][]models.Task)}
}

func (r *MemoryTaskRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Task, len(r.tasks[userID]))
	for i, task := range r.tasks[userID] {
		out[i] = task.Clone()
	}
	return out, nil
}

func (r *MemoryTaskRepository) Upsert(ctx context.Context, task models.Task) (models.Task, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.tasks[task.UserID]
	for i, existing := range list {
		if existing.ID == task.ID {
			list[i] = task.Clone()
			return task, nil
		}
	}
	r.tasks[task.UserID] = append(list, task.Clone())
	return task, nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id, userID string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.tasks[userID]
	for i, existing := range list {
		if existing.ID == id {
			r.tasks[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryIdeaRepository keeps ideas per user in insertion order.
type MemoryIdeaRepository struct {
	mu    sync.RWMutex
	ideas map[string][]models.Idea
}

func NewMemoryIdeaRepository() *MemoryIdeaRepository {
	return &MemoryIdeaRepository{ideas: make(map[string][]models.Idea)}
}

func (r *MemoryIdeaRepository) ListByUser(ctx context.Context, userID string) ([]models.Idea, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Idea, len(r.ideas[userID]))
	copy(out, r.ideas[userID])
	return out, nil
}

func (r *MemoryIdeaRepository) Upsert(ctx context.Context, idea models.Idea) (models.Idea, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.ideas[idea.UserID]
	for i, existing := range list {
		if existing.ID == idea.ID {
			list[i] = idea
			return idea, nil
		}
	}
	r.ideas[idea.UserID] = append(list, idea)
	return idea, nil
}

func (r *MemoryIdeaRepository) Delete(ctx context.Context, id, userID string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.ideas[userID]
	for i, existing := range list {
		if existing.ID == id {
			r.ideas[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryRosterRepository keeps one roster document per user.
type MemoryRosterRepository struct {
	mu      sync.RWMutex
	rosters map[string]models.Roster
}

func NewMemoryRosterRepository() *MemoryRosterRepository {
	return &MemoryRosterRepository{rosters: make(map[string]models.Roster)}
}

func (r *MemoryRosterRepository) Get(ctx context.Context, userID string) (models.Roster, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	roster, ok := r.rosters[userID]
	if !ok {
		return models.Roster{ID: models.RosterDocID, UserID: userID, List: []string{}}, nil
	}
	return roster.Clone(), nil
}

func (r *MemoryRosterRepository) Upsert(ctx context.Context, roster models.Roster) (models.Roster, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rosters[roster.UserID] = roster.Clone()
	return roster, nil
}
