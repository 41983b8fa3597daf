package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-portal/backend/planner-service/models"
	"studio-portal/backend/planner-service/repositories"
	"studio-portal/backend/planner-service/store"
)

const testUser = "user-1"

func newTestTaskService() (*TaskService, *repositories.MemoryTaskRepository, *repositories.MemoryIdeaRepository) {
	taskRepo := repositories.NewMemoryTaskRepository()
	ideaRepo := repositories.NewMemoryIdeaRepository()
	svc := NewTaskService(taskRepo, ideaRepo, store.NewMirror())
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, taskRepo, ideaRepo
}

func TestSaveProjectTask_RejectsSilentlyWithoutName(t *testing.T) {
	svc, repo, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		StartDate: "2026-09-01",
	})

	assert.NoError(t, err)
	assert.Nil(t, task)
	stored, _ := repo.ListByUser(context.Background(), testUser)
	assert.Empty(t, stored)
}

func TestSaveProjectTask_RejectsSilentlyWithoutStartDate(t *testing.T) {
	svc, repo, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName: "Xmas Guide",
	})

	assert.NoError(t, err)
	assert.Nil(t, task)
	stored, _ := repo.ListByUser(context.Background(), testUser)
	assert.Empty(t, stored)
}

func TestSaveProjectTask_ColorAssignmentFivePhases(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "Campaign",
		Artist:    "Salini",
		StartDate: "2026-09-01",
		Phases: []models.PhaseDraft{
			{Name: "P1", EndDate: "2026-09-05"},
			{Name: "P2", EndDate: "2026-09-10"},
			{Name: "P3", EndDate: "2026-09-15"},
			{Name: "P4", EndDate: "2026-09-20"},
			{Name: "P5", EndDate: "2026-09-25"},
		},
	})

	require.NoError(t, err)
	require.Len(t, task.Phases, 5)
	// Indices 0..2 cycle the filler palette, the final two are fixed.
	assert.Equal(t, models.ColorGreen, task.Phases[0].Color)
	assert.Equal(t, models.ColorBlue, task.Phases[1].Color)
	assert.Equal(t, models.ColorPurple, task.Phases[2].Color)
	assert.Equal(t, models.ColorYellow, task.Phases[3].Color)
	assert.Equal(t, models.ColorRed, task.Phases[4].Color)
}

func TestSaveProjectTask_SinglePhaseIsRed(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "One shot",
		StartDate: "2026-09-01",
		Phases:    []models.PhaseDraft{{Name: "Only", EndDate: "2026-09-10"}},
	})

	require.NoError(t, err)
	assert.Equal(t, models.ColorRed, task.Phases[0].Color)
}

func TestSaveProjectTask_SortsPhasesByEndDate(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "Campaign",
		StartDate: "2026-09-01",
		Phases: []models.PhaseDraft{
			{Name: "Final", EndDate: "2026-09-20"},
			{Name: "Draft", EndDate: "2026-09-05"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Draft", task.Phases[0].Name)
	assert.Equal(t, "Final", task.Phases[1].Name)
}

func TestSaveProjectTask_DefaultsMissingPhaseEndDates(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "Campaign",
		StartDate: "2026-09-01",
		Deadline:  "2026-09-30",
		Phases: []models.PhaseDraft{
			{Name: "Draft", EndDate: "2026-09-10"},
			{Name: "Open end"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Open end", task.Phases[1].Name)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), task.Phases[1].EndDate)
}

func TestSaveProjectTask_DeadlineFromLastPhase(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "Campaign",
		StartDate: "2026-09-01",
		Phases: []models.PhaseDraft{
			{Name: "Draft", EndDate: "2026-09-05"},
			{Name: "Final", EndDate: "2026-09-20"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), task.Deadline)
}

func TestSaveProjectTask_DeadlineFallsBackToStartDate(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "Campaign",
		StartDate: "2026-09-01",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), task.Deadline)
}

func TestSaveProjectTask_EmptyArtistIsUnassigned(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "Orphan",
		StartDate: "2026-09-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "Unassigned", task.Artist)
}

func TestSaveProjectTask_UpsertIsIdempotent(t *testing.T) {
	svc, repo, _ := newTestTaskService()
	draft := models.ProjectTaskDraft{
		TaskName:  "Campaign",
		StartDate: "2026-09-01",
		Phases:    []models.PhaseDraft{{ID: "p1", Name: "Draft", EndDate: "2026-09-05"}},
	}

	first, err := svc.SaveProjectTask(context.Background(), testUser, draft)
	require.NoError(t, err)

	draft.ID = first.ID
	second, err := svc.SaveProjectTask(context.Background(), testUser, draft)
	require.NoError(t, err)

	stored, _ := repo.ListByUser(context.Background(), testUser)
	require.Len(t, stored, 1)
	assert.Equal(t, *first, *second)
	assert.Equal(t, *first, stored[0])
}

func TestSaveSocialTask_RequiresFields(t *testing.T) {
	svc, _, _ := newTestTaskService()

	_, err := svc.SaveSocialTask(context.Background(), testUser, models.SocialTaskDraft{
		Name:     "Teaser",
		Platform: "Instagram",
	})

	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSaveSocialTask_ComposesPlatformPrefix(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.SaveSocialTask(context.Background(), testUser, models.SocialTaskDraft{
		Name:     "Teaser",
		Artist:   "Jeki",
		Platform: "Instagram",
		Deadline: "2026-09-12",
	})

	require.NoError(t, err)
	assert.Equal(t, "Instagram: Teaser", task.Name)
	assert.Equal(t, models.TypeSocial, task.Type)
	require.Len(t, task.Phases, 1)
	assert.Equal(t, "Production", task.Phases[0].Name)
	assert.Equal(t, models.ColorSocial, task.Phases[0].Color)
	assert.Equal(t, 0, task.Phases[0].Progress)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), task.Phases[0].EndDate)
}

func TestSaveSocialTask_NeverDoublePrefixes(t *testing.T) {
	svc, _, _ := newTestTaskService()

	created, err := svc.SaveSocialTask(context.Background(), testUser, models.SocialTaskDraft{
		Name:     "Teaser",
		Artist:   "Jeki",
		Platform: "Instagram",
		Deadline: "2026-09-12",
	})
	require.NoError(t, err)

	edited, err := svc.SaveSocialTask(context.Background(), testUser, models.SocialTaskDraft{
		ID:       created.ID,
		Name:     created.Name, // comes back with the prefix applied
		Artist:   "Jeki",
		Platform: "Instagram",
		Deadline: "2026-09-12",
	})
	require.NoError(t, err)

	assert.Equal(t, "Instagram: Teaser", edited.Name)
}

func TestSaveSocialTask_PlatformChangeReplacesPrefix(t *testing.T) {
	svc, _, _ := newTestTaskService()

	created, err := svc.SaveSocialTask(context.Background(), testUser, models.SocialTaskDraft{
		Name:     "Teaser",
		Artist:   "Jeki",
		Platform: "Instagram",
		Deadline: "2026-09-12",
	})
	require.NoError(t, err)

	edited, err := svc.SaveSocialTask(context.Background(), testUser, models.SocialTaskDraft{
		ID:       created.ID,
		Name:     created.Name, // still carries the old platform's prefix
		Artist:   "Jeki",
		Platform: "TikTok",
		Deadline: "2026-09-12",
	})
	require.NoError(t, err)

	assert.Equal(t, "TikTok: Teaser", edited.Name)
}

func TestSaveSocialTask_EditForcesFirstPhaseEndDate(t *testing.T) {
	svc, _, _ := newTestTaskService()

	created, err := svc.SaveSocialTask(context.Background(), testUser, models.SocialTaskDraft{
		Name:     "Teaser",
		Artist:   "Jeki",
		Platform: "Instagram",
		Deadline: "2026-09-12",
	})
	require.NoError(t, err)

	edited, err := svc.SaveSocialTask(context.Background(), testUser, models.SocialTaskDraft{
		ID:       created.ID,
		Name:     "Teaser",
		Artist:   "Jeki",
		Platform: "Instagram",
		Deadline: "2026-09-20",
	})
	require.NoError(t, err)

	require.Len(t, edited.Phases, 1)
	assert.Equal(t, created.Phases[0].ID, edited.Phases[0].ID)
	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), edited.Phases[0].EndDate)
}

func TestUpdateProgress_ReplacesOnlyProgress(t *testing.T) {
	svc, repo, _ := newTestTaskService()

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "Campaign",
		StartDate: "2026-09-01",
		Phases: []models.PhaseDraft{
			{Name: "Draft", EndDate: "2026-09-05", Progress: 10},
			{Name: "Final", EndDate: "2026-09-20"},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(context.Background(), testUser, task.ID, task.Phases[0].ID, 70)
	require.NoError(t, err)

	assert.Equal(t, 70, updated.Phases[0].Progress)
	assert.Equal(t, task.Phases[0].Name, updated.Phases[0].Name)
	assert.Equal(t, task.Phases[1], updated.Phases[1])

	stored, _ := repo.ListByUser(context.Background(), testUser)
	require.Len(t, stored, 1)
	assert.Equal(t, 70, stored[0].Phases[0].Progress)
}

func TestUpdateProgress_LeavesEarlierSnapshotsIntact(t *testing.T) {
	mirror := store.NewMirror()
	svc := NewTaskService(repositories.NewMemoryTaskRepository(), repositories.NewMemoryIdeaRepository(), mirror)

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:  "Campaign",
		StartDate: "2026-09-01",
		Phases:    []models.PhaseDraft{{Name: "Draft", EndDate: "2026-09-10", Progress: 10}},
	})
	require.NoError(t, err)

	snapshot := mirror.Tasks(testUser)
	require.Len(t, snapshot, 1)

	_, err = svc.UpdateProgress(context.Background(), testUser, task.ID, task.Phases[0].ID, 70)
	require.NoError(t, err)

	assert.Equal(t, 10, snapshot[0].Phases[0].Progress)
	current, err := svc.GetTask(context.Background(), testUser, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, current.Phases[0].Progress)
}

func TestUpdateProgress_RejectsOutOfRange(t *testing.T) {
	svc, _, _ := newTestTaskService()

	_, err := svc.UpdateProgress(context.Background(), testUser, "t1", "p1", 120)

	assert.Error(t, err)
}

func TestUpdateProgress_UnknownTask(t *testing.T) {
	svc, _, _ := newTestTaskService()

	_, err := svc.UpdateProgress(context.Background(), testUser, "missing", "p1", 50)

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListTasks_SeedsFirstUse(t *testing.T) {
	svc, repo, _ := newTestTaskService()

	tasks, err := svc.ListTasks(context.Background(), testUser)
	require.NoError(t, err)

	assert.Len(t, tasks, 2)
	stored, _ := repo.ListByUser(context.Background(), testUser)
	assert.Len(t, stored, 2)

	// A second load does not seed again.
	again, err := svc.ListTasks(context.Background(), testUser)
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

func TestListTasks_DoesNotSeedExistingUser(t *testing.T) {
	svc, repo, _ := newTestTaskService()
	repo.Upsert(context.Background(), models.Task{ID: "t1", UserID: testUser, Type: models.TypeProject, Name: "Existing"})

	tasks, err := svc.ListTasks(context.Background(), testUser)
	require.NoError(t, err)

	assert.Len(t, tasks, 1)
	assert.Equal(t, "Existing", tasks[0].Name)
}

func TestPromotion_SaveConsumesIdea(t *testing.T) {
	svc, repo, ideaRepo := newTestTaskService()
	ideaRepo.Upsert(context.Background(), models.Idea{
		ID: "idea-1", UserID: testUser, Title: "Spring drop", Description: "Teaser series", Stage: models.StageReady,
	})

	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		TaskName:     "Spring drop",
		Briefing:     "Teaser series",
		StartDate:    "2026-09-01",
		SourceIdeaID: "idea-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Teaser series", task.Briefing)
	stored, _ := repo.ListByUser(context.Background(), testUser)
	assert.Len(t, stored, 1)
	ideas, _ := ideaRepo.ListByUser(context.Background(), testUser)
	assert.Empty(t, ideas)
}

func TestPromotion_AbandonedSaveLeavesIdea(t *testing.T) {
	svc, _, ideaRepo := newTestTaskService()
	ideaRepo.Upsert(context.Background(), models.Idea{
		ID: "idea-1", UserID: testUser, Title: "Spring drop", Stage: models.StageReady,
	})

	// The draft never passes validation, so nothing is saved and the
	// promoted idea stays put.
	task, err := svc.SaveProjectTask(context.Background(), testUser, models.ProjectTaskDraft{
		SourceIdeaID: "idea-1",
	})
	require.NoError(t, err)
	assert.Nil(t, task)

	ideas, _ := ideaRepo.ListByUser(context.Background(), testUser)
	require.Len(t, ideas, 1)
	assert.Equal(t, models.StageReady, ideas[0].Stage)
}
