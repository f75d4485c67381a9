package service

import (
	"context"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/repository"
	"github.com/google/uuid"
)

type ComputerService struct {
	computerRepo repository.ComputerRepository
	sessionRepo  repository.SessionRepository
}

func NewComputerService(computerRepo repository.ComputerRepository, sessionRepo repository.SessionRepository) *ComputerService {
	return &ComputerService{
		computerRepo: computerRepo,
		sessionRepo:  sessionRepo,
	}
}

func (s *ComputerService) ListAvailable(ctx context.Context) ([]*domain.Computer, error) {
	return s.computerRepo.ListByStatus(ctx, domain.ComputerStatusAvailable)
}

// ComputerOccupancy is a computer plus the user of its open session, if any.
type ComputerOccupancy struct {
	Computer     *domain.Computer `json:"computer"`
	OccupiedBy   *domain.User     `json:"occupiedBy,omitempty"`
	SessionStart *time.Time       `json:"sessionStart,omitempty"`
}

func (s *ComputerService) ListWithOccupants(ctx context.Context) ([]*ComputerOccupancy, error) {
	computers, err := s.computerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	open, err := s.sessionRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	byComputer := make(map[uuid.UUID]*domain.Session, len(open))
	for _, session := range open {
		byComputer[session.ComputerID] = session
	}

	occupancies := make([]*ComputerOccupancy, 0, len(computers))
	for _, computer := range computers {
		occ := &ComputerOccupancy{Computer: computer}
		if session, ok := byComputer[computer.ID]; ok {
			occ.OccupiedBy = session.User
			start := session.StartTime
			occ.SessionStart = &start
		}
		occupancies = append(occupancies, occ)
	}
	return occupancies, nil
}
