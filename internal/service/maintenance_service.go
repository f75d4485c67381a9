package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	computerRepo    repository.ComputerRepository

	now func() time.Time
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, computerRepo repository.ComputerRepository) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		computerRepo:    computerRepo,
		now:             time.Now,
	}
}

type ScheduleMaintenanceInput struct {
	ComputerID     uuid.UUID
	Type           string
	Description    string
	Technician     string
	EstimatedHours float64
	Priority       domain.MaintenancePriority
}

// Schedule appends a maintenance log entry and takes the computer out of
// the rentable pool. A computer with an open session cannot be scheduled;
// the session has to be ended first.
func (s *MaintenanceService) Schedule(ctx context.Context, input ScheduleMaintenanceInput) (*domain.MaintenanceLog, error) {
	computer, err := s.computerRepo.GetByID(ctx, input.ComputerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComputerNotFound
		}
		return nil, err
	}

	if computer.Status == domain.ComputerStatusInUse {
		return nil, domain.ErrComputerInUse
	}

	details, err := json.Marshal(domain.MaintenanceDetails{
		Type:           input.Type,
		Priority:       input.Priority,
		EstimatedHours: input.EstimatedHours,
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	log := &domain.MaintenanceLog{
		ID:              uuid.New(),
		ComputerID:      computer.ID,
		MaintenanceDate: now,
		Description:     fmt.Sprintf("%s: %s", input.Type, input.Description),
		Technician:      input.Technician,
		Details:         details,
	}

	// Log entry and status flip commit together.
	if err := s.maintenanceRepo.Append(ctx, log); err != nil {
		return nil, err
	}

	computer.Status = domain.ComputerStatusMaintenance
	computer.LastMaintenance = &now
	log.Computer = computer

	return log, nil
}

// Complete returns a computer from maintenance to the rentable pool.
func (s *MaintenanceService) Complete(ctx context.Context, computerID uuid.UUID) (*domain.Computer, error) {
	computer, err := s.computerRepo.GetByID(ctx, computerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComputerNotFound
		}
		return nil, err
	}

	if computer.Status != domain.ComputerStatusMaintenance {
		return nil, domain.ErrComputerNotInMaintenance
	}

	if err := s.computerRepo.SetStatus(ctx, computer.ID, domain.ComputerStatusAvailable); err != nil {
		return nil, err
	}

	computer.Status = domain.ComputerStatusAvailable
	return computer, nil
}

const defaultHistoryLimit = 10

func (s *MaintenanceService) History(ctx context.Context, limit int) ([]*domain.MaintenanceLog, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.maintenanceRepo.ListRecent(ctx, limit)
}
