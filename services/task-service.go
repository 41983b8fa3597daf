package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"studio-portal/backend/planner-service/logging"
	"studio-portal/backend/planner-service/models"
	"studio-portal/backend/planner-service/repositories"
	"studio-portal/backend/planner-service/store"
	"studio-portal/backend/planner-service/timeline"
)

const unassignedArtist = "Unassigned"

// ErrMissingFields rejects a social asset submission without the
// required name, artist and deadline.
var ErrMissingFields = errors.New("name, artist and deadline are required")

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrPhaseNotFound   = errors.New("phase not found")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
)

type TaskService struct {
	tasks  repositories.TaskRepository
	ideas  repositories.IdeaRepository
	mirror *store.Mirror
	now    func() time.Time
}

func NewTaskService(tasks repositories.TaskRepository, ideas repositories.IdeaRepository, mirror *store.Mirror) *TaskService {
	return &TaskService{tasks: tasks, ideas: ideas, mirror: mirror, now: time.Now}
}

// ListTasks returns the user's tasks, seeding the starter set for a
// brand-new account so the timeline is never empty. The local mirror is
// refreshed from the store on every list.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		tasks = SeedTasks(userID, s.now())
		for _, task := range tasks {
			if _, err := s.tasks.Upsert(ctx, task); err != nil {
				return nil, fmt.Errorf("failed to seed starter tasks: %v", err)
			}
		}
		logging.Logger.Infof("Event ID: TASKS_SEEDED, Description: Seeded %d starter tasks for user %s", len(tasks), userID)
	}

	s.mirror.SetTasks(userID, tasks)
	return tasks, nil
}

// SaveProjectTask applies the project save rules to a form draft and
// persists the full record. A draft missing the task name or start date
// is a silent no-op and returns nil.
func (s *TaskService) SaveProjectTask(ctx context.Context, userID string, draft models.ProjectTaskDraft) (*models.Task, error) {
	if draft.TaskName == "" || draft.StartDate == "" {
		return nil, nil
	}

	startDate := timeline.ParseInput(draft.StartDate)

	phases := make([]models.Phase, 0, len(draft.Phases))
	for _, p := range draft.Phases {
		endRaw := p.EndDate
		if endRaw == "" {
			endRaw = draft.Deadline
		}
		if endRaw == "" {
			endRaw = draft.StartDate
		}
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		phases = append(phases, models.Phase{
			ID:       id,
			Name:     p.Name,
			EndDate:  timeline.ParseInput(endRaw),
			Progress: p.Progress,
		})
	}

	slices.SortStableFunc(phases, func(a, b models.Phase) int {
		return a.EndDate.Compare(b.EndDate)
	})
	assignPhaseColors(phases)

	var deadline time.Time
	switch {
	case draft.Deadline != "":
		deadline = timeline.ParseInput(draft.Deadline)
	case len(phases) > 0:
		deadline = phases[len(phases)-1].EndDate
	default:
		deadline = startDate
	}

	artist := draft.Artist
	if artist == "" {
		artist = unassignedArtist
	}

	id := draft.ID
	if id == "" {
		id = uuid.New().String()
	}

	task := models.Task{
		ID:        id,
		UserID:    userID,
		Type:      models.TypeProject,
		Artist:    artist,
		Name:      draft.TaskName,
		Briefing:  draft.Briefing,
		FolderURL: draft.FolderURL,
		StartDate: startDate,
		Deadline:  deadline,
		Phases:    phases,
	}

	s.persist(ctx, task, draft.SourceIdeaID)
	return &task, nil
}

// SaveSocialTask applies the social asset save rules. The display name
// carries the platform prefix; an existing prefix is stripped before
// re-applying so edits never double-prefix.
func (s *TaskService) SaveSocialTask(ctx context.Context, userID string, draft models.SocialTaskDraft) (*models.Task, error) {
	if draft.Name == "" || draft.Artist == "" || draft.Deadline == "" {
		return nil, ErrMissingFields
	}

	var existing models.Task
	if draft.ID != "" {
		var err error
		existing, err = s.findTask(ctx, userID, draft.ID)
		if err != nil {
			return nil, err
		}
	}

	// Strip the submitted platform's prefix, and on edit the stored
	// platform's as well, so switching platforms never double-prefixes.
	name := strings.TrimPrefix(draft.Name, draft.Platform+": ")
	if existing.Platform != "" {
		name = strings.TrimPrefix(name, existing.Platform+": ")
	}

	startDate := timeline.ParseInput(draft.StartDate)
	deadline := timeline.ParseInputOr(draft.Deadline, startDate)

	task := models.Task{
		ID:        draft.ID,
		UserID:    userID,
		Type:      models.TypeSocial,
		Artist:    draft.Artist,
		Name:      fmt.Sprintf("%s: %s", draft.Platform, name),
		Briefing:  draft.Briefing,
		FolderURL: draft.FolderURL,
		StartDate: startDate,
		Deadline:  deadline,
		Platform:  draft.Platform,
	}

	if draft.ID == "" {
		task.ID = uuid.New().String()
		task.Phases = []models.Phase{{
			ID:       uuid.New().String(),
			Name:     "Production",
			Color:    models.ColorSocial,
			Progress: 0,
			EndDate:  deadline,
		}}
	} else {
		task.Phases = existing.Phases
	}
	if len(task.Phases) > 0 {
		task.Phases[0].EndDate = deadline
	}

	s.persist(ctx, task, "")
	return &task, nil
}

// UpdateProgress replaces a single phase's progress and re-persists the
// whole record; the store has no partial update.
func (s *TaskService) UpdateProgress(ctx context.Context, userID, taskID, phaseID string, value int) (*models.Task, error) {
	if value < 0 || value > 100 {
		return nil, ErrInvalidProgress
	}

	task, err := s.findTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range task.Phases {
		if task.Phases[i].ID == phaseID {
			task.Phases[i].Progress = value
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s on task %s", ErrPhaseNotFound, phaseID, taskID)
	}

	s.persist(ctx, task, "")
	return &task, nil
}

// DeleteTask removes the record and its phases with it.
func (s *TaskService) DeleteTask(ctx context.Context, userID, id string) error {
	s.mirror.RemoveTask(userID, id)
	if err := s.tasks.Delete(ctx, id, userID); err != nil {
		logging.Logger.Errorf("Event ID: TASK_DELETE_FAILED, Description: Failed to delete task %s for user %s: %v", id, userID, err)
		return err
	}
	return nil
}

// GetTask returns one of the user's tasks by id.
func (s *TaskService) GetTask(ctx context.Context, userID, id string) (models.Task, error) {
	return s.findTask(ctx, userID, id)
}

// persist applies the record to the local mirror first, then issues the
// best-effort remote write. A remote failure is logged and the local
// change is kept; the promoted-from idea is only consumed when the
// remote write succeeded.
func (s *TaskService) persist(ctx context.Context, task models.Task, sourceIdeaID string) {
	s.mirror.ApplyTask(task)

	if _, err := s.tasks.Upsert(ctx, task); err != nil {
		logging.Logger.Errorf("Event ID: TASK_WRITE_FAILED, Description: Failed to persist task %s for user %s, local state may diverge until next reload: %v", task.ID, task.UserID, err)
		return
	}

	if sourceIdeaID != "" {
		s.mirror.RemoveIdea(task.UserID, sourceIdeaID)
		if err := s.ideas.Delete(ctx, sourceIdeaID, task.UserID); err != nil {
			logging.Logger.Errorf("Event ID: IDEA_CONSUME_FAILED, Description: Task %s saved but promoted idea %s was not deleted: %v", task.ID, sourceIdeaID, err)
		} else {
			logging.Logger.Infof("Event ID: IDEA_PROMOTED, Description: Idea %s consumed by task %s", sourceIdeaID, task.ID)
		}
	}
}

func (s *TaskService) findTask(ctx context.Context, userID, id string) (models.Task, error) {
	for _, task := range s.mirror.Tasks(userID) {
		if task.ID == id {
			return task, nil
		}
	}

	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return models.Task{}, err
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return models.Task{}, ErrTaskNotFound
}

// assignPhaseColors colors phases by position: the final phase is red,
// the one before it yellow, everything earlier cycles the filler palette.
func assignPhaseColors(phases []models.Phase) {
	total := len(phases)
	for idx := range phases {
		switch {
		case idx == total-1:
			phases[idx].Color = models.ColorRed
		case idx == total-2:
			phases[idx].Color = models.ColorYellow
		default:
			phases[idx].Color = models.FillerColors[idx%len(models.FillerColors)]
		}
	}
}
