package repository

import (
	"context"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ComputerRepository interface {
	Create(ctx context.Context, computer *domain.Computer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Computer, error)
	ListAll(ctx context.Context) ([]*domain.Computer, error)
	ListByStatus(ctx context.Context, status domain.ComputerStatus) ([]*domain.Computer, error)
	CountByStatus(ctx context.Context, status domain.ComputerStatus) (int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ComputerStatus) error
}

type SessionRepository interface {
	// Start claims the computer and inserts the session row in one
	// transaction. The claim is a conditional available -> in-use update,
	// so a concurrent double-start has exactly one winner; the loser gets
	// domain.ErrComputerUnavailable and writes nothing.
	Start(ctx context.Context, session *domain.Session) error
	// Close persists the billed fields and releases the computer in one
	// transaction, so a failed release never strands a closed session.
	Close(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error)
	ListOpen(ctx context.Context) ([]*domain.Session, error)
	CountOpenByComputer(ctx context.Context, computerID uuid.UUID) (int64, error)
}

type MaintenanceRepository interface {
	// Append moves the computer into maintenance, stamps last_maintenance
	// and writes the log entry, all in one transaction.
	Append(ctx context.Context, log *domain.MaintenanceLog) error
	ListRecent(ctx context.Context, limit int) ([]*domain.MaintenanceLog, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
}

type ReportRepository interface {
	DailyUsage(ctx context.Context, since time.Time) ([]*domain.DailyUsage, error)
	UsagePerComputer(ctx context.Context) ([]*domain.ComputerUsage, error)
	SessionsSince(ctx context.Context, since time.Time) (count int64, revenue float64, err error)
}

type Repositories struct {
	User        UserRepository
	Computer    ComputerRepository
	Session     SessionRepository
	Maintenance MaintenanceRepository
	Inventory   InventoryRepository
	Report      ReportRepository
}
