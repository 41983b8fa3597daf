package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studio-portal/backend/planner-service/logging"
	"studio-portal/backend/planner-service/models"
	"studio-portal/backend/planner-service/repositories"
	"studio-portal/backend/planner-service/store"
)

var (
	ErrIdeaNotFound = errors.New("idea not found")
	ErrNotReady     = errors.New("only ready ideas can be promoted")
)

type IdeaService struct {
	ideas  repositories.IdeaRepository
	mirror *store.Mirror
	now    func() time.Time
}

func NewIdeaService(ideas repositories.IdeaRepository, mirror *store.Mirror) *IdeaService {
	return &IdeaService{ideas: ideas, mirror: mirror, now: time.Now}
}

func (s *IdeaService) ListIdeas(ctx context.Context, userID string) ([]models.Idea, error) {
	ideas, err := s.ideas.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.mirror.SetIdeas(userID, ideas)
	return ideas, nil
}

// SaveIdea creates a new idea in the inbox, or updates title and
// description of an existing one without touching its stage.
func (s *IdeaService) SaveIdea(ctx context.Context, userID, id, title, description string) (*models.Idea, error) {
	idea := models.Idea{
		ID:          id,
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	if id == "" {
		idea.ID = uuid.New().String()
		idea.Stage = models.StageInbox
		idea.CreatedAt = s.now()
	} else {
		existing, err := s.findIdea(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		idea.Stage = existing.Stage
		idea.CreatedAt = existing.CreatedAt
	}

	s.mirror.ApplyIdea(idea)
	if _, err := s.ideas.Upsert(ctx, idea); err != nil {
		logging.Logger.Errorf("Event ID: IDEA_WRITE_FAILED, Description: Failed to persist idea %s for user %s, local state may diverge until next reload: %v", idea.ID, userID, err)
	}
	return &idea, nil
}

// MoveIdea shifts the idea one stage forward or backward through the
// pipeline. A move past either end is a no-op and returns the idea
// unchanged.
func (s *IdeaService) MoveIdea(ctx context.Context, userID, id string, direction int) (*models.Idea, error) {
	idea, err := s.findIdea(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	idx := idea.StageIndex() + direction
	if idx < 0 || idx >= len(models.Stages) {
		return &idea, nil
	}

	idea.Stage = models.Stages[idx]
	s.mirror.ApplyIdea(idea)
	if _, err := s.ideas.Upsert(ctx, idea); err != nil {
		logging.Logger.Errorf("Event ID: IDEA_WRITE_FAILED, Description: Failed to persist idea %s for user %s, local state may diverge until next reload: %v", idea.ID, userID, err)
	}
	return &idea, nil
}

func (s *IdeaService) DeleteIdea(ctx context.Context, userID, id string) error {
	s.mirror.RemoveIdea(userID, id)
	if err := s.ideas.Delete(ctx, id, userID); err != nil {
		logging.Logger.Errorf("Event ID: IDEA_DELETE_FAILED, Description: Failed to delete idea %s for user %s: %v", id, userID, err)
		return err
	}
	return nil
}

// Promote builds the prefill payload for the project task form from a
// ready idea. The idea itself is untouched here; it is consumed only
// when the resulting task save succeeds, so an abandoned promotion
// leaves it in place.
func (s *IdeaService) Promote(ctx context.Context, userID, id string) (*models.IdeaPrefill, error) {
	idea, err := s.findIdea(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if idea.Stage != models.StageReady {
		return nil, ErrNotReady
	}
	return &models.IdeaPrefill{
		IdeaID:   idea.ID,
		Name:     idea.Title,
		Briefing: idea.Description,
	}, nil
}

func (s *IdeaService) findIdea(ctx context.Context, userID, id string) (models.Idea, error) {
	for _, idea := range s.mirror.Ideas(userID) {
		if idea.ID == id {
			return idea, nil
		}
	}

	ideas, err := s.ideas.ListByUser(ctx, userID)
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to look up idea: %v", err)
	}
	for _, idea := range ideas {
		if idea.ID == id {
			return idea, nil
		}
	}
	return models.Idea{}, ErrIdeaNotFound
}
