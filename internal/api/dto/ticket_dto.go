package dto

import (
	"encoding/json"
	"time"

	"github.com/spec-kit/support-ops-api/internal/domain"
)

// TicketListItem is the API shape of a listed ticket.
type TicketListItem struct {
	TicketID             string     `json:"ticketId"`
	CustomerID           *string    `json:"customerId"`
	MerchantID           *string    `json:"merchantId"`
	Status               string     `json:"status"`
	Channel              *string    `json:"channel"`
	Priority             *string    `json:"priority"`
	IssueType            *string    `json:"issueType"`
	Summary              *string    `json:"summary"`
	CreatedAt            time.Time  `json:"createdAt"`
	FirstResponseAt      *time.Time `json:"firstResponseAt"`
	ResolvedAt           *time.Time `json:"resolvedAt"`
	FirstResponseSeconds *int64     `json:"firstResponseSeconds"`
}

// TicketDetail keeps the storage column names of the ticket row.
type TicketDetail struct {
	TicketID        string     `json:"ticket_id"`
	CustomerID      *string    `json:"customer_id"`
	MerchantID      *string    `json:"merchant_id"`
	Status          string     `json:"status"`
	Channel         *string    `json:"channel"`
	Priority        *string    `json:"priority"`
	IssueType       *string    `json:"issue_type"`
	Summary         *string    `json:"summary"`
	CreatedAt       time.Time  `json:"created_at"`
	FirstResponseAt *time.Time `json:"first_response_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	SLADueAt        *time.Time `json:"sla_due_at"`
}

// TicketEvent is the API shape of a ticket audit event.
type TicketEvent struct {
	TicketEventID string    `json:"ticketEventId"`
	TicketID      string    `json:"ticketId"`
	EventType     string    `json:"eventType"`
	EventTime     time.Time `json:"eventTime"`
	ActorType     *string   `json:"actorType"`
	ActorAgentID  *string   `json:"actorAgentId"`
	OldValue      *string   `json:"oldValue"`
	NewValue      *string   `json:"newValue"`
	PayloadJSON   any       `json:"payloadJson"`
}

// TicketMessage is the API shape of a ticket message.
type TicketMessage struct {
	MessageID      string    `json:"messageId"`
	TicketID       string    `json:"ticketId"`
	MessageTime    time.Time `json:"messageTime"`
	ActorType      *string   `json:"actorType"`
	AgentID        *string   `json:"agentId"`
	Channel        *string   `json:"channel"`
	MessageText    *string   `json:"messageText"`
	MessageSummary *string   `json:"messageSummary"`
	Sentiment      *string   `json:"sentiment"`
}

// TicketListItems maps listed tickets.
func TicketListItems(items []domain.TicketListItem) []TicketListItem {
	resp := make([]TicketListItem, 0, len(items))
	for _, t := range items {
		resp = append(resp, TicketListItem{
			TicketID:             t.TicketID,
			CustomerID:           t.CustomerID,
			MerchantID:           t.MerchantID,
			Status:               t.Status,
			Channel:              t.Channel,
			Priority:             t.Priority,
			IssueType:            t.IssueType,
			Summary:              t.Summary,
			CreatedAt:            t.CreatedAt,
			FirstResponseAt:      t.FirstResponseAt,
			ResolvedAt:           t.ResolvedAt,
			FirstResponseSeconds: t.FirstResponseSeconds,
		})
	}
	return resp
}

// TicketPagination derives the pagination block of a ticket page.
func TicketPagination(page domain.TicketPage) Pagination {
	return Pagination{
		Page:       page.Page.Number(),
		PageSize:   page.Page.Size(),
		Total:      page.Total,
		TotalPages: page.TotalPages(),
	}
}

// TicketDetailFrom maps a stored ticket.
func TicketDetailFrom(t *domain.Ticket) TicketDetail {
	return TicketDetail{
		TicketID:        t.TicketID,
		CustomerID:      t.CustomerID,
		MerchantID:      t.MerchantID,
		Status:          t.Status,
		Channel:         t.Channel,
		Priority:        t.Priority,
		IssueType:       t.IssueType,
		Summary:         t.Summary,
		CreatedAt:       t.CreatedAt,
		FirstResponseAt: t.FirstResponseAt,
		ResolvedAt:      t.ResolvedAt,
		SLADueAt:        t.SLADueAt,
	}
}

// TicketEvents maps ticket events.
func TicketEvents(events []domain.TicketEvent) []TicketEvent {
	resp := make([]TicketEvent, 0, len(events))
	for _, e := range events {
		resp = append(resp, TicketEvent{
			TicketEventID: e.TicketEventID,
			TicketID:      e.TicketID,
			EventType:     e.EventType,
			EventTime:     e.EventTime,
			ActorType:     e.ActorType,
			ActorAgentID:  e.ActorAgentID,
			OldValue:      e.OldValue,
			NewValue:      e.NewValue,
			PayloadJSON:   payload(e.PayloadJSON),
		})
	}
	return resp
}

// TicketMessages maps ticket messages.
func TicketMessages(messages []domain.TicketMessage) []TicketMessage {
	resp := make([]TicketMessage, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, TicketMessage{
			MessageID:      m.MessageID,
			TicketID:       m.TicketID,
			MessageTime:    m.MessageTime,
			ActorType:      m.ActorType,
			AgentID:        m.AgentID,
			Channel:        m.Channel,
			MessageText:    m.MessageText,
			MessageSummary: m.MessageSummary,
			Sentiment:      m.Sentiment,
		})
	}
	return resp
}

// payload embeds stored JSON as-is and falls back to the raw string.
func payload(raw *string) any {
	if raw == nil {
		return nil
	}
	if json.Valid([]byte(*raw)) {
		return json.RawMessage(*raw)
	}
	return *raw
}
