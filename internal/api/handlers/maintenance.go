package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/service"
	"github.com/arjun/cybercafe-backend/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
	hub                *websocket.Hub
}

func NewMaintenanceHandler(maintenanceService *service.MaintenanceService, hub *websocket.Hub) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		hub:                hub,
	}
}

type ScheduleMaintenanceRequest struct {
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	Technician     string  `json:"technician"`
	EstimatedHours float64 `json:"estimatedHours"`
	Priority       string  `json:"priority"`
}

func (h *MaintenanceHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	computerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid computer ID", http.StatusBadRequest)
		return
	}

	var req ScheduleMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Type == "" || req.Technician == "" {
		http.Error(w, "Type and technician are required", http.StatusBadRequest)
		return
	}

	log, err := h.maintenanceService.Schedule(r.Context(), service.ScheduleMaintenanceInput{
		ComputerID:     computerID,
		Type:           req.Type,
		Description:    req.Description,
		Technician:     req.Technician,
		EstimatedHours: req.EstimatedHours,
		Priority:       domain.MaintenancePriority(req.Priority),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.hub.BroadcastComputerStatus(log.Computer)

	respondJSON(w, log)
}

func (h *MaintenanceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	computerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid computer ID", http.StatusBadRequest)
		return
	}

	computer, err := h.maintenanceService.Complete(r.Context(), computerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.hub.BroadcastComputerStatus(computer)

	respondJSON(w, computer)
}

func (h *MaintenanceHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	logs, err := h.maintenanceService.History(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, logs)
}
