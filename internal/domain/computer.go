package domain

import (
	"time"

	"github.com/google/uuid"
)

type ComputerStatus string

const (
	ComputerStatusAvailable   ComputerStatus = "available"
	ComputerStatusInUse       ComputerStatus = "in-use"
	ComputerStatusMaintenance ComputerStatus = "maintenance"
)

// Computer is a rentable workstation. Status transitions:
// available -> in-use (session start) -> available (session end);
// available -> maintenance (schedule) -> available (complete).
type Computer struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string         `json:"name" gorm:"uniqueIndex;not null"`
	Status          ComputerStatus `json:"status" gorm:"not null;default:'available'"`
	Specifications  string         `json:"specifications"`
	LastMaintenance *time.Time     `json:"lastMaintenance"`
	HourlyRate      float64        `json:"hourlyRate" gorm:"not null;default:30.0"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
