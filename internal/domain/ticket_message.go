package domain

import "time"

// TicketMessage captures one message of a ticket conversation.
type TicketMessage struct {
	MessageID      string    `db:"message_id"`
	TicketID       string    `db:"ticket_id"`
	MessageTime    time.Time `db:"message_time"`
	ActorType      *string   `db:"actor_type"`
	AgentID        *string   `db:"agent_id"`
	Channel        *string   `db:"channel"`
	MessageText    *string   `db:"message_text"`
	MessageSummary *string   `db:"message_summary"`
	Sentiment      *string   `db:"sentiment"`
}
