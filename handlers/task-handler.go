package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"studio-portal/backend/planner-service/middleware"
	"studio-portal/backend/planner-service/models"
	"studio-portal/backend/planner-service/services"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	tasks, err := h.service.ListTasks(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// SaveProjectTask handles both creation and wholesale edit of a project
// task. A draft missing its name or start date is dropped without
// touching any record.
func (h *TaskHandler) SaveProjectTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var draft models.ProjectTaskDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.service.SaveProjectTask(r.Context(), userID, draft)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if task == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) SaveSocialTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var draft models.SocialTaskDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.service.SaveSocialTask(r.Context(), userID, draft)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrTaskNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

type progressRequest struct {
	Progress int `json:"progress"`
}

func (h *TaskHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	vars := mux.Vars(r)
	taskID := vars["taskID"]
	phaseID := vars["phaseID"]

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.service.UpdateProgress(r.Context(), userID, taskID, phaseID, req.Progress)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound), errors.Is(err, services.ErrPhaseNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidProgress):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	taskID := mux.Vars(r)["taskID"]

	if err := h.service.DeleteTask(r.Context(), userID, taskID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBrief serves a task's briefing as a downloadable plain-text file,
// mirroring the brief export in the client.
func (h *TaskHandler) GetBrief(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	taskID := mux.Vars(r)["taskID"]

	task, err := h.service.GetTask(r.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	briefing := task.Briefing
	if briefing == "" {
		briefing = "No briefing provided."
	}

	filename := strings.ReplaceAll(task.Name, " ", "_") + "_brief.txt"
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(briefing))
}
