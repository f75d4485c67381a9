package websocket

import (
	"encoding/json"

	"github.com/arjun/cybercafe-backend/internal/domain"
)

const EventTypeComputerStatus = "computer.status"

type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type ComputerStatusPayload struct {
	ComputerID string                `json:"computerId"`
	Name       string                `json:"name"`
	Status     domain.ComputerStatus `json:"status"`
}

func newComputerStatusEvent(computer *domain.Computer) ([]byte, error) {
	payload, err := json.Marshal(ComputerStatusPayload{
		ComputerID: computer.ID.String(),
		Name:       computer.Name,
		Status:     computer.Status,
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(Event{Type: EventTypeComputerStatus, Payload: payload})
}
