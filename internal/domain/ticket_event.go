package domain

import "time"

// TicketEvent is an append-only audit trail entry for a ticket.
type TicketEvent struct {
	TicketEventID string    `db:"ticket_event_id"`
	TicketID      string    `db:"ticket_id"`
	EventType     string    `db:"event_type"`
	EventTime     time.Time `db:"event_time"`
	ActorType     *string   `db:"actor_type"`
	ActorAgentID  *string   `db:"actor_agent_id"`
	OldValue      *string   `db:"old_value"`
	NewValue      *string   `db:"new_value"`
	PayloadJSON   *string   `db:"payload_json"`
}
