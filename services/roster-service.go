package services

import (
	"context"

	"studio-portal/backend/planner-service/logging"
	"studio-portal/backend/planner-service/models"
	"studio-portal/backend/planner-service/repositories"
	"studio-portal/backend/planner-service/store"
)

type RosterService struct {
	rosters repositories.RosterRepository
	mirror  *store.Mirror
}

func NewRosterService(rosters repositories.RosterRepository, mirror *store.Mirror) *RosterService {
	return &RosterService{rosters: rosters, mirror: mirror}
}

// GetRoster returns the user's roster, seeding the default artist pair
// when nothing is stored yet.
func (s *RosterService) GetRoster(ctx context.Context, userID string) (models.Roster, error) {
	roster, err := s.rosters.Get(ctx, userID)
	if err != nil {
		return models.Roster{}, err
	}

	if len(roster.List) == 0 {
		roster = models.Roster{
			ID:     models.RosterDocID,
			UserID: userID,
			List:   append([]string(nil), DefaultArtists...),
		}
		if _, err := s.rosters.Upsert(ctx, roster); err != nil {
			return models.Roster{}, err
		}
		logging.Logger.Infof("Event ID: ROSTER_SEEDED, Description: Seeded default roster for user %s", userID)
	}

	s.mirror.SetRoster(roster)
	return roster, nil
}

// AddResource appends a new name to the roster and persists the whole
// list. Names already present (exact match) are silently ignored.
func (s *RosterService) AddResource(ctx context.Context, userID, name string) (models.Roster, error) {
	if name == "" {
		roster, err := s.GetRoster(ctx, userID)
		return roster, err
	}

	roster, ok := s.mirror.Roster(userID)
	if !ok {
		var err error
		roster, err = s.GetRoster(ctx, userID)
		if err != nil {
			return models.Roster{}, err
		}
	}
	if roster.Contains(name) {
		return roster, nil
	}

	roster.List = append(roster.List, name)
	s.mirror.SetRoster(roster)
	if _, err := s.rosters.Upsert(ctx, roster); err != nil {
		logging.Logger.Errorf("Event ID: ROSTER_WRITE_FAILED, Description: Failed to persist roster for user %s, local state may diverge until next reload: %v", userID, err)
	}
	return roster, nil
}
