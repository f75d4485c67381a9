package handlers

import (
	"net/http"

	"github.com/arjun/cybercafe-backend/internal/service"
)

type ComputerHandler struct {
	computerService *service.ComputerService
}

func NewComputerHandler(computerService *service.ComputerService) *ComputerHandler {
	return &ComputerHandler{computerService: computerService}
}

func (h *ComputerHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	computers, err := h.computerService.ListAvailable(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, computers)
}

func (h *ComputerHandler) List(w http.ResponseWriter, r *http.Request) {
	occupancies, err := h.computerService.ListWithOccupants(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, occupancies)
}
