package store

import (
	"sync"

	"studio-portal/backend/planner-service/models"
)

// Mirror is the local tier of the two-tier store: a per-user projection
// of the remote collections, applied optimistically on every write. The
// remote store stays authoritative; SetTasks/SetIdeas/SetRoster replace
// a user's snapshot wholesale when it is re-read. A failed remote write
// is not rolled back here, so local and remote can diverge until the
// next refresh.
type Mirror struct {
	mu      sync.RWMutex
	tasks   map[string][]models.Task
	ideas   map[string][]models.Idea
	rosters map[string]models.Roster
}

func NewMirror() *Mirror {
	return &Mirror{
		tasks:   make(map[string][]models.Task),
		ideas:   make(map[string][]models.Idea),
		rosters: make(map[string]models.Roster),
	}
}

func (m *Mirror) SetTasks(userID string, tasks []models.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[userID] = cloneTasks(tasks)
}

// Tasks returns a deep copy of the user's snapshot. Callers may mutate
// the returned tasks and their phases without writing through.
func (m *Mirror) Tasks(userID string) []models.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneTasks(m.tasks[userID])
}

// ApplyTask upserts one task into the user's snapshot.
func (m *Mirror) ApplyTask(task models.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.tasks[task.UserID]
	for i, existing := range list {
		if existing.ID == task.ID {
			list[i] = task.Clone()
			return
		}
	}
	m.tasks[task.UserID] = append(list, task.Clone())
}

func (m *Mirror) RemoveTask(userID, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.tasks[userID]
	for i, existing := range list {
		if existing.ID == id {
			m.tasks[userID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (m *Mirror) SetIdeas(userID string, ideas []models.Idea) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ideas[userID] = append([]models.Idea(nil), ideas...)
}

func (m *Mirror) Ideas(userID string) []models.Idea {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Idea(nil), m.ideas[userID]...)
}

func (m *Mirror) ApplyIdea(idea models.Idea) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.ideas[idea.UserID]
	for i, existing := range list {
		if existing.ID == idea.ID {
			list[i] = idea
			return
		}
	}
	m.ideas[idea.UserID] = append(list, idea)
}

func (m *Mirror) RemoveIdea(userID, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.ideas[userID]
	for i, existing := range list {
		if existing.ID == id {
			m.ideas[userID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (m *Mirror) SetRoster(roster models.Roster) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosters[roster.UserID] = roster.Clone()
}

func (m *Mirror) Roster(userID string) (models.Roster, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	roster, ok := m.rosters[userID]
	return roster.Clone(), ok
}

// cloneTasks copies the list and each task's phase slice. Ideas are
// flat value structs, so plain slice copies suffice for them.
func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
