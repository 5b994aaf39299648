package events

import (
	"time"

	"github.com/camilovegag/procesos-de-negocio/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketSubmitted EventType = "ticket_submitted"
	EventDraftRejected   EventType = "ticket_draft_rejected"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// TicketSubmittedPayload carries the accepted record.
type TicketSubmittedPayload struct {
	Ticket domain.TicketDraft `json:"ticket"`
}

// DraftRejectedPayload lists the failing fields of a submission attempt.
type DraftRejectedPayload struct {
	Errors map[string]string `json:"errors"`
}
