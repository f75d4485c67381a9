package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arjun/cybercafe-backend/internal/api/middleware"
	"github.com/arjun/cybercafe-backend/internal/service"
	"github.com/arjun/cybercafe-backend/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionService *service.SessionService
	hub            *websocket.Hub
}

func NewSessionHandler(sessionService *service.SessionService, hub *websocket.Hub) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		hub:            hub,
	}
}

type StartSessionRequest struct {
	ComputerID     string  `json:"computerId"`
	EstimatedHours float64 `json:"estimatedHours"`
}

type StartSessionResponse struct {
	Session       interface{} `json:"session"`
	EstimatedCost float64     `json:"estimatedCost"`
}

func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	computerID, err := uuid.Parse(req.ComputerID)
	if err != nil {
		http.Error(w, "Invalid computer ID", http.StatusBadRequest)
		return
	}

	if req.EstimatedHours < 0 {
		http.Error(w, "Estimated hours must be non-negative", http.StatusBadRequest)
		return
	}

	result, err := h.sessionService.Start(r.Context(), service.StartSessionInput{
		UserID:         userID,
		ComputerID:     computerID,
		EstimatedHours: req.EstimatedHours,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.hub.BroadcastComputerStatus(result.Computer)

	respondJSON(w, StartSessionResponse{
		Session:       result.Session,
		EstimatedCost: result.EstimatedCost,
	})
}

func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.End(r.Context(), userID, sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.hub.BroadcastComputerStatus(session.Computer)

	respondJSON(w, session)
}

func (h *SessionHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	open, err := h.sessionService.ListOpen(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, open)
}
