package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/support-ops-api/internal/domain"
	apperrors "github.com/spec-kit/support-ops-api/pkg/util/errorutil"
)

const (
	msgMissingRange = "Missing required parameters: from and to (ISO 8601 format)"
	msgInvalidDate  = "Invalid date format. Use ISO 8601 format (YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss)"
	msgInvalidRange = `Parameter "from" must be before "to"`

	defaultTicketWindow = 30 * 24 * time.Hour
)

// Accepted ISO 8601 forms; inputs without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RangeQuery holds raw from/to query values.
type RangeQuery struct {
	From string
	To   string
}

// ParsePage turns raw page/pageSize values into a clamped page. Absent or
// non-numeric values fall back to the defaults.
func ParsePage(page, pageSize string) domain.Page {
	return domain.NewPage(
		parseIntOr(page, domain.DefaultPage),
		parseIntOr(pageSize, domain.DefaultPageSize),
	)
}

// ParseDate parses an ISO 8601 value. Blank input yields nil.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperrors.NewInvalidDate(msgInvalidDate)
}

// RequireRange validates a mandatory [from, to) range.
func RequireRange(q RangeQuery) (domain.DateRange, error) {
	if strings.TrimSpace(q.From) == "" || strings.TrimSpace(q.To) == "" {
		return domain.DateRange{}, apperrors.NewMissingParameter(msgMissingRange)
	}
	from, to, err := OptionalRange(q)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{From: *from, To: *to}, nil
}

// OptionalRange parses whichever bounds are present and rejects from >= to
// when both are.
func OptionalRange(q RangeQuery) (*time.Time, *time.Time, error) {
	from, err := ParseDate(q.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := ParseDate(q.To)
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, apperrors.NewInvalidRange(msgInvalidRange)
	}
	return from, to, nil
}

// normUpper trims and upper-cases an enum-like filter; blank means absent.
func normUpper(val string) *string {
	val = strings.ToUpper(strings.TrimSpace(val))
	if val == "" {
		return nil
	}
	return &val
}

// normTrim trims a case-sensitive filter; blank means absent.
func normTrim(val string) *string {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	return &val
}

// parseIntOr reads the leading integer of val ("2abc" is 2, "3.7" is 3).
// Without leading digits it returns def; out-of-range values saturate.
func parseIntOr(val string, def int) int {
	val = strings.TrimSpace(val)
	end := 0
	if end < len(val) && (val[end] == '-' || val[end] == '+') {
		end++
	}
	digits := end
	for end < len(val) && val[end] >= '0' && val[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	parsed, err := strconv.Atoi(val[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	return parsed
}
