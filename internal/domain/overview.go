package domain

// TicketSummary aggregates tickets created in a range.
type TicketSummary struct {
	TotalTickets            int64    `db:"total_tickets"`
	TicketsClosed           *int64   `db:"tickets_closed"`
	SLABreaches             *int64   `db:"sla_breaches"`
	AvgFirstResponseSeconds *float64 `db:"avg_first_response_seconds"`
}

// Summary is the executive overview of a range.
type Summary struct {
	TicketSummary
	TotalErrorEvents int64
}

// SupportTrendPoint is one calendar day of ticket activity.
type SupportTrendPoint struct {
	Date           string `db:"date"`
	TicketsCreated int64  `db:"tickets_created"`
	TicketsClosed  *int64 `db:"tickets_closed"`
	SLABreaches    *int64 `db:"sla_breaches"`
}

// ServiceTrendPoint is one calendar day of service telemetry.
type ServiceTrendPoint struct {
	Date         string   `db:"date"`
	TotalEvents  int64    `db:"total_events"`
	ErrorEvents  *int64   `db:"error_events"`
	P95LatencyMs *float64 `db:"p95_latency_ms"`
}
