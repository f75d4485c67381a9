package service

import (
	"context"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/repository"
)

const defaultUsageWindowDays = 30

type ReportService struct {
	reportRepo   repository.ReportRepository
	computerRepo repository.ComputerRepository

	now func() time.Time
}

func NewReportService(reportRepo repository.ReportRepository, computerRepo repository.ComputerRepository) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		computerRepo: computerRepo,
		now:          time.Now,
	}
}

// DailyUsage aggregates sessions started in the trailing window per
// calendar day. Open sessions count toward the day's session count but
// contribute nothing to revenue until they close.
func (s *ReportService) DailyUsage(ctx context.Context, days int) ([]*domain.DailyUsage, error) {
	if days <= 0 {
		days = defaultUsageWindowDays
	}
	since := s.now().AddDate(0, 0, -days)
	return s.reportRepo.DailyUsage(ctx, since)
}

func (s *ReportService) UsagePerComputer(ctx context.Context) ([]*domain.ComputerUsage, error) {
	return s.reportRepo.UsagePerComputer(ctx)
}

func (s *ReportService) Dashboard(ctx context.Context) (*domain.DashboardMetrics, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, revenue, err := s.reportRepo.SessionsSince(ctx, midnight)
	if err != nil {
		return nil, err
	}

	available, err := s.computerRepo.CountByStatus(ctx, domain.ComputerStatusAvailable)
	if err != nil {
		return nil, err
	}

	inMaintenance, err := s.computerRepo.CountByStatus(ctx, domain.ComputerStatusMaintenance)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardMetrics{
		TodaySessions:      count,
		TodayRevenue:       revenue,
		AvailableComputers: available,
		InMaintenance:      inMaintenance,
	}, nil
}
