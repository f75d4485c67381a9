package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is one rental of one computer by one user, billed by elapsed
// wall-clock time. EndTime, Duration and Cost are set together when the
// session closes and are never mutated afterward.
type Session struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	ComputerID uuid.UUID  `json:"computerId" gorm:"type:uuid;not null;index"`
	StartTime  time.Time  `json:"startTime" gorm:"not null"`
	EndTime    *time.Time `json:"endTime"`
	Duration   *float64   `json:"duration"` // hours, fractional
	Cost       *float64   `json:"cost"`

	// Relations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Computer *Computer `json:"computer,omitempty" gorm:"foreignKey:ComputerID"`
}

func (s *Session) IsOpen() bool {
	return s.EndTime == nil
}
