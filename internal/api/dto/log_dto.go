package dto

import (
	"time"

	"github.com/spec-kit/support-ops-api/internal/domain"
)

// TopError is the API shape of a ranked error signature.
type TopError struct {
	ErrorSignature *string   `json:"errorSignature"`
	ServiceName    string    `json:"serviceName"`
	ErrorCount     int64     `json:"errorCount"`
	LastOccurrence time.Time `json:"lastOccurrence"`
	DaysWithErrors int64     `json:"daysWithErrors"`
}

// LatencyBucket is the API shape of an hourly latency bucket.
type LatencyBucket struct {
	HourStart    string   `json:"hourStart"`
	ServiceName  string   `json:"serviceName"`
	Endpoint     *string  `json:"endpoint"`
	P95LatencyMs *float64 `json:"p95LatencyMs"`
	AvgLatencyMs *float64 `json:"avgLatencyMs"`
	MaxLatencyMs *float64 `json:"maxLatencyMs"`
	RequestCount int64    `json:"requestCount"`
}

// TopErrors maps top error rows.
func TopErrors(rows []domain.TopError) []TopError {
	resp := make([]TopError, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, TopError{
			ErrorSignature: r.ErrorSignature,
			ServiceName:    r.ServiceName,
			ErrorCount:     r.ErrorCount,
			LastOccurrence: r.LastOccurrence,
			DaysWithErrors: r.DaysWithErrors,
		})
	}
	return resp
}

// LatencyTrend maps latency buckets.
func LatencyTrend(rows []domain.LatencyBucket) []LatencyBucket {
	resp := make([]LatencyBucket, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, LatencyBucket{
			HourStart:    r.HourStart,
			ServiceName:  r.ServiceName,
			Endpoint:     r.Endpoint,
			P95LatencyMs: r.P95LatencyMs,
			AvgLatencyMs: r.AvgLatencyMs,
			MaxLatencyMs: r.MaxLatencyMs,
			RequestCount: r.RequestCount,
		})
	}
	return resp
}
