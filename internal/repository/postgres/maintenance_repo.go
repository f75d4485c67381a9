package postgres

import (
	"context"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"gorm.io/gorm"
)

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *maintenanceRepository {
	return &maintenanceRepository{db: db}
}

// Append flips the computer to maintenance and writes the log entry in
// one transaction; a failed insert rolls the status change back.
func (r *maintenanceRepository) Append(ctx context.Context, log *domain.MaintenanceLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Computer{}).
			Where("id = ?", log.ComputerID).
			Updates(map[string]interface{}{
				"status":           domain.ComputerStatusMaintenance,
				"last_maintenance": log.MaintenanceDate,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrComputerNotFound
		}
		return tx.Create(log).Error
	})
}

func (r *maintenanceRepository) ListRecent(ctx context.Context, limit int) ([]*domain.MaintenanceLog, error) {
	var logs []*domain.MaintenanceLog
	err := r.db.WithContext(ctx).
		Preload("Computer").
		Order("maintenance_date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
