package domain

import "time"

// TicketStatusClosed marks a ticket counted as closed by the overview metrics.
const TicketStatusClosed = "CLOSED"

// TicketListItem is the projection returned by the ticket listing.
type TicketListItem struct {
	TicketID             string     `db:"ticket_id"`
	CustomerID           *string    `db:"customer_id"`
	MerchantID           *string    `db:"merchant_id"`
	Status               string     `db:"status"`
	Channel              *string    `db:"channel"`
	Priority             *string    `db:"priority"`
	IssueType            *string    `db:"issue_type"`
	Summary              *string    `db:"summary"`
	CreatedAt            time.Time  `db:"created_at"`
	FirstResponseAt      *time.Time `db:"first_response_at"`
	ResolvedAt           *time.Time `db:"resolved_at"`
	FirstResponseSeconds *int64     `db:"first_response_seconds"`
}

// Ticket is the full stored ticket row.
type Ticket struct {
	TicketID        string     `db:"ticket_id"`
	CustomerID      *string    `db:"customer_id"`
	MerchantID      *string    `db:"merchant_id"`
	Status          string     `db:"status"`
	Channel         *string    `db:"channel"`
	Priority        *string    `db:"priority"`
	IssueType       *string    `db:"issue_type"`
	Summary         *string    `db:"summary"`
	CreatedAt       time.Time  `db:"created_at"`
	FirstResponseAt *time.Time `db:"first_response_at"`
	ResolvedAt      *time.Time `db:"resolved_at"`
	SLADueAt        *time.Time `db:"sla_due_at"`
}

// TicketFilter narrows the ticket listing. Nil fields are not applied.
type TicketFilter struct {
	Status      *string
	Channel     *string
	Priority    *string
	IssueType   *string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// TicketPage is one page of the ticket listing plus the total match count.
type TicketPage struct {
	Items []TicketListItem
	Total int64
	Page  Page
}

// TotalPages returns ceil(total / pageSize).
func (p TicketPage) TotalPages() int64 {
	size := int64(p.Page.Size())
	return (p.Total + size - 1) / size
}
