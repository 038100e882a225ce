package domain

import "time"

// LogLevelError is the level counted as an error event.
const LogLevelError = "ERROR"

// TopError ranks an error signature within a service.
type TopError struct {
	ErrorSignature *string   `db:"error_signature"`
	ServiceName    string    `db:"service_name"`
	ErrorCount     int64     `db:"error_count"`
	LastOccurrence time.Time `db:"last_occurrence"`
	DaysWithErrors int64     `db:"days_with_errors"`
}

// LatencyBucket aggregates latencies of one service endpoint within an hour.
type LatencyBucket struct {
	HourStart    string   `db:"hour_start"`
	ServiceName  string   `db:"service_name"`
	Endpoint     *string  `db:"endpoint"`
	P95LatencyMs *float64 `db:"p95_latency_ms"`
	AvgLatencyMs *float64 `db:"avg_latency_ms"`
	MaxLatencyMs *float64 `db:"max_latency_ms"`
	RequestCount int64    `db:"request_count"`
}

// LogFilter narrows log queries to a service and/or endpoint.
type LogFilter struct {
	Service  *string
	Endpoint *string
}
