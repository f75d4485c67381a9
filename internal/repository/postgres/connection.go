package postgres

import (
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Computer{},
		&domain.Session{},
		&domain.MaintenanceLog{},
		&domain.InventoryItem{},
	)
}

// SeedComputers inserts the default floor layout on first boot. It is a
// no-op when any computer already exists.
func SeedComputers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Computer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	computers := []domain.Computer{
		{Name: "PC-01", Status: domain.ComputerStatusAvailable, Specifications: "Intel i5, 16GB RAM, RTX 3060", LastMaintenance: &now, HourlyRate: 30.0},
		{Name: "PC-02", Status: domain.ComputerStatusAvailable, Specifications: "Intel i7, 32GB RAM, RTX 3070", LastMaintenance: &now, HourlyRate: 35.0},
		{Name: "PC-03", Status: domain.ComputerStatusAvailable, Specifications: "AMD Ryzen 7, 16GB RAM, RX 6700", LastMaintenance: &now, HourlyRate: 30.0},
	}
	return db.Create(&computers).Error
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		Computer:    NewComputerRepository(db),
		Session:     NewSessionRepository(db),
		Maintenance: NewMaintenanceRepository(db),
		Inventory:   NewInventoryRepository(db),
		Report:      NewReportRepository(db),
	}
}
