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

// SessionService opens and closes rentals. Billing is always derived from
// wall-clock elapsed time at close; the start-time estimate is advisory
// only and never persisted.
type SessionService struct {
	sessionRepo  repository.SessionRepository
	computerRepo repository.ComputerRepository

	now func() time.Time
}

func NewSessionService(sessionRepo repository.SessionRepository, computerRepo repository.ComputerRepository) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		computerRepo: computerRepo,
		now:          time.Now,
	}
}

type StartSessionInput struct {
	UserID         uuid.UUID
	ComputerID     uuid.UUID
	EstimatedHours float64
}

type StartSessionResult struct {
	Session       *domain.Session
	Computer      *domain.Computer
	EstimatedCost float64
}

func (s *SessionService) Start(ctx context.Context, input StartSessionInput) (*StartSessionResult, error) {
	computer, err := s.computerRepo.GetByID(ctx, input.ComputerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComputerNotFound
		}
		return nil, err
	}

	session := &domain.Session{
		ID:         uuid.New(),
		UserID:     input.UserID,
		ComputerID: computer.ID,
		StartTime:  s.now(),
	}

	// One transaction claims the computer and writes the session; the
	// losing caller of a race gets ErrComputerUnavailable and no row.
	if err := s.sessionRepo.Start(ctx, session); err != nil {
		return nil, err
	}

	computer.Status = domain.ComputerStatusInUse
	session.Computer = computer

	return &StartSessionResult{
		Session:       session,
		Computer:      computer,
		EstimatedCost: input.EstimatedHours * computer.HourlyRate,
	}, nil
}

// End closes an open session owned by userID. Duration is fractional
// hours of elapsed wall-clock time, cost = duration * hourly rate.
func (s *SessionService) End(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	// Sessions of other users are reported as not found rather than
	// acknowledged.
	if session.UserID != userID {
		return nil, domain.ErrSessionNotFound
	}

	if !session.IsOpen() {
		return nil, domain.ErrSessionAlreadyClosed
	}

	now := s.now()
	duration := now.Sub(session.StartTime).Hours()
	if duration < 0 {
		duration = 0
	}
	cost := duration * session.Computer.HourlyRate

	session.EndTime = &now
	session.Duration = &duration
	session.Cost = &cost

	// Close and release commit together; a failed release can never leave
	// the session billed while the computer sits in-use.
	if err := s.sessionRepo.Close(ctx, session); err != nil {
		return nil, err
	}
	session.Computer.Status = domain.ComputerStatusAvailable

	return session, nil
}

// OpenSession is an open rental annotated with its live running total.
// The annotation is display-only and never persisted.
type OpenSession struct {
	Session      *domain.Session `json:"session"`
	ElapsedHours float64         `json:"elapsedHours"`
	RunningCost  float64         `json:"runningCost"`
}

func (s *SessionService) ListOpen(ctx context.Context, userID uuid.UUID) ([]*OpenSession, error) {
	sessions, err := s.sessionRepo.ListOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	open := make([]*OpenSession, 0, len(sessions))
	for _, session := range sessions {
		elapsed := now.Sub(session.StartTime).Hours()
		if elapsed < 0 {
			elapsed = 0
		}
		open = append(open, &OpenSession{
			Session:      session,
			ElapsedHours: elapsed,
			RunningCost:  elapsed * session.Computer.HourlyRate,
		})
	}
	return open, nil
}
