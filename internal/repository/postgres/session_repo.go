package postgres

import (
	"context"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

// Start claims the computer and inserts the session inside one
// transaction; if the insert fails the claim rolls back with it and the
// computer is never stranded in-use.
func (r *sessionRepository) Start(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Computer{}).
			Where("id = ? AND status = ?", session.ComputerID, domain.ComputerStatusAvailable).
			Update("status", domain.ComputerStatusInUse)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrComputerUnavailable
		}
		return tx.Create(session).Error
	})
}

// Close writes the billed fields and the computer release as one
// transaction. The end_time IS NULL guard keeps a racing double-close
// from billing twice or releasing a computer the session no longer holds.
func (r *sessionRepository) Close(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Session{}).
			Where("id = ? AND end_time IS NULL", session.ID).
			Updates(map[string]interface{}{
				"end_time": session.EndTime,
				"duration": session.Duration,
				"cost":     session.Cost,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrSessionAlreadyClosed
		}
		return tx.Model(&domain.Computer{}).
			Where("id = ?", session.ComputerID).
			Update("status", domain.ComputerStatusAvailable).Error
	})
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).
		Preload("Computer").
		First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	var sessions []*domain.Session
	err := r.db.WithContext(ctx).
		Preload("Computer").
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) ListOpen(ctx context.Context) ([]*domain.Session, error) {
	var sessions []*domain.Session
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("end_time IS NULL").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) CountOpenByComputer(ctx context.Context, computerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("computer_id = ? AND end_time IS NULL", computerID).
		Count(&count).Error
	return count, err
}
