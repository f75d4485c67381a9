package postgres

import (
	"context"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *reportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DailyUsage(ctx context.Context, since time.Time) ([]*domain.DailyUsage, error) {
	var rows []*domain.DailyUsage
	err := r.db.WithContext(ctx).Raw(`
		SELECT date_trunc('day', start_time) AS day,
		       COUNT(*)                      AS sessions,
		       COALESCE(SUM(cost), 0)        AS revenue
		FROM sessions
		WHERE start_time >= ?
		GROUP BY 1
		ORDER BY 1`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) UsagePerComputer(ctx context.Context) ([]*domain.ComputerUsage, error) {
	var rows []*domain.ComputerUsage
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id        AS computer_id,
		       c.name      AS name,
		       COUNT(s.id) AS sessions
		FROM computers c
		LEFT JOIN sessions s ON s.computer_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) SessionsSince(ctx context.Context, since time.Time) (int64, float64, error) {
	var row struct {
		Count   int64
		Revenue float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)               AS count,
		       COALESCE(SUM(cost), 0) AS revenue
		FROM sessions
		WHERE start_time >= ?`, since).Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Revenue, nil
}
