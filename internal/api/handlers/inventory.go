package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arjun/cybercafe-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
}

func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

type CreateItemRequest struct {
	ItemName     string  `json:"itemName"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"pricePerItem"`
	Category     string  `json:"category"`
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ItemName == "" {
		http.Error(w, "Item name is required", http.StatusBadRequest)
		return
	}

	item, err := h.inventoryService.Create(r.Context(), service.CreateItemInput{
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		PricePerItem: req.PricePerItem,
		Category:     req.Category,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, item)
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, items)
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *InventoryHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Quantity < 0 {
		http.Error(w, "Quantity must be non-negative", http.StatusBadRequest)
		return
	}

	item, err := h.inventoryService.UpdateQuantity(r.Context(), itemID, req.Quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, item)
}
