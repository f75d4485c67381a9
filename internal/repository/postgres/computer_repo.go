package postgres

import (
	"context"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type computerRepository struct {
	db *gorm.DB
}

func NewComputerRepository(db *gorm.DB) *computerRepository {
	return &computerRepository{db: db}
}

func (r *computerRepository) Create(ctx context.Context, computer *domain.Computer) error {
	return r.db.WithContext(ctx).Create(computer).Error
}

func (r *computerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Computer, error) {
	var computer domain.Computer
	err := r.db.WithContext(ctx).First(&computer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &computer, nil
}

func (r *computerRepository) ListAll(ctx context.Context) ([]*domain.Computer, error) {
	var computers []*domain.Computer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&computers).Error
	if err != nil {
		return nil, err
	}
	return computers, nil
}

func (r *computerRepository) ListByStatus(ctx context.Context, status domain.ComputerStatus) ([]*domain.Computer, error) {
	var computers []*domain.Computer
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("name ASC").
		Find(&computers).Error
	if err != nil {
		return nil, err
	}
	return computers, nil
}

func (r *computerRepository) CountByStatus(ctx context.Context, status domain.ComputerStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Computer{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *computerRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.ComputerStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Computer{}).
		Where("id = ?", id).
		Update("status", status).Error
}
