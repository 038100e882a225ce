package domain

import "time"

// DateRange is a half-open [From, To) interval.
type DateRange struct {
	From time.Time
	To   time.Time
}
