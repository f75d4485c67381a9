package service

import (
	"github.com/arjun/cybercafe-backend/internal/config"
	"github.com/arjun/cybercafe-backend/internal/repository"
)

type Services struct {
	Auth        *AuthService
	Session     *SessionService
	Maintenance *MaintenanceService
	Computer    *ComputerService
	Report      *ReportService
	Inventory   *InventoryService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, cfg),
		Session:     NewSessionService(repos.Session, repos.Computer),
		Maintenance: NewMaintenanceService(repos.Maintenance, repos.Computer),
		Computer:    NewComputerService(repos.Computer, repos.Session),
		Report:      NewReportService(repos.Report, repos.Computer),
		Inventory:   NewInventoryService(repos.Inventory),
	}
}
