package domain

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ItemName     string    `json:"itemName" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null;default:0"`
	PricePerItem float64   `json:"pricePerItem"`
	Category     string    `json:"category"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

func (InventoryItem) TableName() string { return "inventory" }
