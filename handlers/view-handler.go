package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"studio-portal/backend/planner-service/middleware"
	"studio-portal/backend/planner-service/services"
	"studio-portal/backend/planner-service/timeline"
)

// ViewHandler serves the read-only projections: timeline layout,
// dashboard aggregates, social board and the strategy calendar.
type ViewHandler struct {
	tasks *services.TaskService
}

func NewViewHandler(tasks *services.TaskService) *ViewHandler {
	return &ViewHandler{tasks: tasks}
}

// GetTimeline renders the layout for the requested window start. With
// no start parameter the window opens ten days before today.
func (h *ViewHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	today := time.Now()

	viewport := timeline.DefaultViewport(today)
	if start := r.URL.Query().Get("start"); start != "" {
		viewport = timeline.Viewport{Start: timeline.ParseInput(start)}
	}

	tasks, err := h.tasks.ListTasks(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	layout := timeline.BuildLayout(tasks, viewport, today)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(layout)
}

func (h *ViewHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	tasks, err := h.tasks.ListTasks(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := services.BuildDashboard(tasks, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *ViewHandler) GetSocialBoard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	tasks, err := h.tasks.ListTasks(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	board := services.BuildSocialBoard(tasks)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(board)
}

func (h *ViewHandler) GetStrategy(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services.StrategyCycles())
}
