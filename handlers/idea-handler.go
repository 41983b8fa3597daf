package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"studio-portal/backend/planner-service/middleware"
	"studio-portal/backend/planner-service/services"
)

type IdeaHandler struct {
	service *services.IdeaService
}

func NewIdeaHandler(service *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{service: service}
}

func (h *IdeaHandler) GetIdeas(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	ideas, err := h.service.ListIdeas(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ideas)
}

type ideaRequest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *IdeaHandler) SaveIdea(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req ideaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	idea, err := h.service.SaveIdea(r.Context(), userID, req.ID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrIdeaNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(idea)
}

type moveRequest struct {
	Direction int `json:"direction"`
}

func (h *IdeaHandler) MoveIdea(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	ideaID := mux.Vars(r)["ideaID"]

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	idea, err := h.service.MoveIdea(r.Context(), userID, ideaID, req.Direction)
	if err != nil {
		if errors.Is(err, services.ErrIdeaNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(idea)
}

// PromoteIdea returns the project form prefill for a ready idea. The
// idea stays stored until the resulting task save succeeds.
func (h *IdeaHandler) PromoteIdea(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	ideaID := mux.Vars(r)["ideaID"]

	prefill, err := h.service.Promote(r.Context(), userID, ideaID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIdeaNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, services.ErrNotReady):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prefill)
}

func (h *IdeaHandler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	ideaID := mux.Vars(r)["ideaID"]

	if err := h.service.DeleteIdea(r.Context(), userID, ideaID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
