package dto

import "github.com/spec-kit/support-ops-api/internal/domain"

// Summary is the API shape of the executive summary.
type Summary struct {
	TotalTickets            int64    `json:"totalTickets"`
	TicketsClosed           int64    `json:"ticketsClosed"`
	SLABreaches             int64    `json:"slaBreaches"`
	AvgFirstResponseSeconds *float64 `json:"avgFirstResponseSeconds"`
	// No query computes this yet; it is always null.
	P95FirstResponseSeconds *float64 `json:"p95FirstResponseSeconds"`
	TotalErrorEvents        int64    `json:"totalErrorEvents"`
}

// SupportTrendPoint is the API shape of a support trend day.
type SupportTrendPoint struct {
	Date           string `json:"date"`
	TicketsCreated int64  `json:"ticketsCreated"`
	TicketsClosed  int64  `json:"ticketsClosed"`
	SLABreaches    int64  `json:"slaBreaches"`
}

// ServiceTrendPoint is the API shape of a service trend day.
type ServiceTrendPoint struct {
	Date         string   `json:"date"`
	TotalEvents  int64    `json:"totalEvents"`
	ErrorEvents  int64    `json:"errorEvents"`
	P95LatencyMs *float64 `json:"p95LatencyMs"`
}

// SummaryFrom maps the merged summary.
func SummaryFrom(s domain.Summary) Summary {
	return Summary{
		TotalTickets:            s.TotalTickets,
		TicketsClosed:           valueOrZero(s.TicketsClosed),
		SLABreaches:             valueOrZero(s.SLABreaches),
		AvgFirstResponseSeconds: nonZero(s.AvgFirstResponseSeconds),
		TotalErrorEvents:        s.TotalErrorEvents,
	}
}

// nonZero reports a zero average as null, the same as an empty range.
func nonZero(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

// SupportTrend maps support trend rows.
func SupportTrend(points []domain.SupportTrendPoint) []SupportTrendPoint {
	resp := make([]SupportTrendPoint, 0, len(points))
	for _, p := range points {
		resp = append(resp, SupportTrendPoint{
			Date:           p.Date,
			TicketsCreated: p.TicketsCreated,
			TicketsClosed:  valueOrZero(p.TicketsClosed),
			SLABreaches:    valueOrZero(p.SLABreaches),
		})
	}
	return resp
}

// ServiceTrend maps service trend rows.
func ServiceTrend(points []domain.ServiceTrendPoint) []ServiceTrendPoint {
	resp := make([]ServiceTrendPoint, 0, len(points))
	for _, p := range points {
		resp = append(resp, ServiceTrendPoint{
			Date:         p.Date,
			TotalEvents:  p.TotalEvents,
			ErrorEvents:  valueOrZero(p.ErrorEvents),
			P95LatencyMs: p.P95LatencyMs,
		})
	}
	return resp
}
