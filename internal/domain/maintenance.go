package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MaintenancePriority string

const (
	PriorityLow      MaintenancePriority = "low"
	PriorityMedium   MaintenancePriority = "medium"
	PriorityHigh     MaintenancePriority = "high"
	PriorityCritical MaintenancePriority = "critical"
)

// MaintenanceDetails is the informational payload stored alongside a log
// entry. It has no scheduling effect.
type MaintenanceDetails struct {
	Type           string              `json:"type"`
	Priority       MaintenancePriority `json:"priority"`
	EstimatedHours float64             `json:"estimatedHours"`
}

// MaintenanceLog is append-only.
type MaintenanceLog struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ComputerID      uuid.UUID      `json:"computerId" gorm:"type:uuid;not null;index"`
	MaintenanceDate time.Time      `json:"maintenanceDate" gorm:"not null"`
	Description     string         `json:"description"`
	Technician      string         `json:"technician"`
	Details         datatypes.JSON `json:"details"`

	// Relations
	Computer *Computer `json:"computer,omitempty" gorm:"foreignKey:ComputerID"`
}
