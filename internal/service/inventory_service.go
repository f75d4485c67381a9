package service

import (
	"context"
	"errors"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService tracks consumables. Nothing in the billing flow reads
// from it; it is stock-keeping only.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository

	now func() time.Time
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		now:           time.Now,
	}
}

type CreateItemInput struct {
	ItemName     string
	Quantity     int
	PricePerItem float64
	Category     string
}

func (s *InventoryService) Create(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{
		ID:           uuid.New(),
		ItemName:     input.ItemName,
		Quantity:     input.Quantity,
		PricePerItem: input.PricePerItem,
		Category:     input.Category,
		LastUpdated:  s.now(),
	}
	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.inventoryRepo.List(ctx)
}

func (s *InventoryService) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	item.Quantity = quantity
	item.LastUpdated = s.now()

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
