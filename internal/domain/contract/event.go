package contract

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSigned    EventType = "signed"
	EventCompleted EventType = "completed"
)

// Event is pushed to everyone watching a contract.
type Event struct {
	Type       EventType `json:"type"`
	ContractID uuid.UUID `json:"contract_id"`
	Role       Role      `json:"role,omitempty"`
	Name       string    `json:"name,omitempty"`
	At         time.Time `json:"at"`
}
