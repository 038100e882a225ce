package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-ops-api/internal/domain"
	apperrors "github.com/spec-kit/support-ops-api/pkg/util/errorutil"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		name       string
		page, size string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"defaults", "", "", 1, 25, 0},
		{"explicit", "3", "10", 3, 10, 20},
		{"non numeric", "abc", "x", 1, 25, 0},
		{"clamp max", "1", "500", 1, 100, 0},
		{"zero size", "1", "0", 1, 1, 0},
		{"negative", "-4", "-10", 1, 1, 0},
		{"whitespace", " 2 ", " 50 ", 2, 50, 50},
		{"huge page", "922337203685477581", "100", domain.MaxPage, 100, (domain.MaxPage - 1) * 100},
		{"beyond int range", "99999999999999999999999", "25", domain.MaxPage, 25, (domain.MaxPage - 1) * 25},
		{"leading digits", "2abc", "10.5", 2, 10, 10},
		{"sign only", "-", "+", 1, 25, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsePage(tc.page, tc.size)
			assert.Equal(t, tc.wantPage, p.Number())
			assert.Equal(t, tc.wantSize, p.Size())
			assert.Equal(t, tc.wantOffset, p.Offset())
		})
	}
}

func TestParseDate(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-01":                time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"2024-03-01T10:20:30":       time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		"2024-03-01T10:20":          time.Date(2024, 3, 1, 10, 20, 0, 0, time.UTC),
		"2024-03-01 10:20:30":       time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		"2024-03-01T10:20:30Z":      time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		"2024-03-01T12:20:30+02:00": time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		"2024-03-01T10:20:30.500Z":  time.Date(2024, 3, 1, 10, 20, 30, 500_000_000, time.UTC),
	}
	for raw, want := range cases {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		require.NotNil(t, got, raw)
		assert.True(t, want.Equal(*got), "%s: got %s", raw, got)
	}

	blank, err := ParseDate("  ")
	require.NoError(t, err)
	assert.Nil(t, blank)

	_, err = ParseDate("yesterday")
	de := apperrors.Classify(err, true)
	assert.Equal(t, apperrors.KindInvalidDate, de.Kind)
	assert.Equal(t, 400, de.HTTPStatus)
}

func TestRequireRange(t *testing.T) {
	_, err := RequireRange(RangeQuery{From: "2024-01-01"})
	assert.Equal(t, apperrors.KindMissingParameter, apperrors.Classify(err, false).Kind)

	_, err = RequireRange(RangeQuery{From: "2024-01-02", To: "2024-01-02"})
	de := apperrors.Classify(err, false)
	assert.Equal(t, apperrors.KindInvalidRange, de.Kind)
	assert.Equal(t, apperrors.CategoryBadRequest, de.Category)

	_, err = RequireRange(RangeQuery{From: "2024-01-03", To: "2024-01-02"})
	assert.Equal(t, apperrors.KindInvalidRange, apperrors.Classify(err, false).Kind)

	_, err = RequireRange(RangeQuery{From: "nope", To: "2024-01-02"})
	assert.Equal(t, apperrors.KindInvalidDate, apperrors.Classify(err, false).Kind)

	rng, err := RequireRange(RangeQuery{From: "2024-01-01", To: "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rng.From)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), rng.To)
}

func TestNormalizers(t *testing.T) {
	assert.Equal(t, "CLOSED", *normUpper(" closed "))
	assert.Nil(t, normUpper("   "))
	assert.Equal(t, "Refund Request", *normTrim(" Refund Request "))
	assert.Nil(t, normTrim(""))
}
