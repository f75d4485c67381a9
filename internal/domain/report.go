package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyUsage is one calendar day of session activity. Revenue only sums
// closed sessions; open ones have no cost yet.
type DailyUsage struct {
	Day      time.Time `json:"day"`
	Sessions int64     `json:"sessions"`
	Revenue  float64   `json:"revenue"`
}

// ComputerUsage counts all sessions, open or closed, per computer.
type ComputerUsage struct {
	ComputerID uuid.UUID `json:"computerId"`
	Name       string    `json:"name"`
	Sessions   int64     `json:"sessions"`
}

type DashboardMetrics struct {
	TodaySessions      int64   `json:"todaySessions"`
	TodayRevenue       float64 `json:"todayRevenue"`
	AvailableComputers int64   `json:"availableComputers"`
	InMaintenance      int64   `json:"inMaintenance"`
}
