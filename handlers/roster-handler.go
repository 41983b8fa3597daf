package handlers

import (
	"encoding/json"
	"net/http"

	"studio-portal/backend/planner-service/middleware"
	"studio-portal/backend/planner-service/services"
)

type RosterHandler struct {
	service *services.RosterService
}

func NewRosterHandler(service *services.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

func (h *RosterHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	roster, err := h.service.GetRoster(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(roster)
}

type addResourceRequest struct {
	Name string `json:"name"`
}

func (h *RosterHandler) AddResource(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req addResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	roster, err := h.service.AddResource(r.Context(), userID, req.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(roster)
}
