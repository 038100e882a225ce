package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-ops-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestTicketListItemsRenamesColumns(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	secs := int64(90)
	items := []domain.TicketListItem{{
		TicketID:             "T-1",
		CustomerID:           strPtr("C-9"),
		Status:               "OPEN",
		IssueType:            strPtr("refund"),
		CreatedAt:            created,
		FirstResponseSeconds: &secs,
	}}

	raw, err := json.Marshal(TicketListItems(items))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "T-1", decoded[0]["ticketId"])
	assert.Equal(t, "C-9", decoded[0]["customerId"])
	assert.Equal(t, "refund", decoded[0]["issueType"])
	assert.Equal(t, float64(90), decoded[0]["firstResponseSeconds"])
	assert.Nil(t, decoded[0]["firstResponseAt"])
	assert.NotContains(t, decoded[0], "ticket_id")
	assert.Len(t, decoded[0], 12)
}

func TestTicketPaginationPastLastPage(t *testing.T) {
	page := domain.TicketPage{Items: nil, Total: 51, Page: domain.NewPage(9, 25)}

	p := TicketPagination(page)
	assert.Equal(t, Pagination{Page: 9, PageSize: 25, Total: 51, TotalPages: 3}, p)
	assert.NotNil(t, TicketListItems(page.Items))
	assert.Empty(t, TicketListItems(page.Items))
}

func TestEventPayloadEmbedsJSON(t *testing.T) {
	events := TicketEvents([]domain.TicketEvent{
		{TicketEventID: "1", PayloadJSON: strPtr(`{"from":"OPEN","to":"CLOSED"}`)},
		{TicketEventID: "2", PayloadJSON: strPtr("not json")},
		{TicketEventID: "3"},
	})

	raw, err := json.Marshal(events)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]any{"from": "OPEN", "to": "CLOSED"}, decoded[0]["payloadJson"])
	assert.Equal(t, "not json", decoded[1]["payloadJson"])
	assert.Nil(t, decoded[2]["payloadJson"])
}

func TestSummaryDefaultsAndNullP95(t *testing.T) {
	s := SummaryFrom(domain.Summary{TicketSummary: domain.TicketSummary{TotalTickets: 0}, TotalErrorEvents: 3})

	assert.Equal(t, int64(0), s.TicketsClosed)
	assert.Equal(t, int64(0), s.SLABreaches)
	assert.Nil(t, s.AvgFirstResponseSeconds)
	assert.Nil(t, s.P95FirstResponseSeconds)
	assert.Equal(t, int64(3), s.TotalErrorEvents)
}

func TestSummaryZeroAverageIsNull(t *testing.T) {
	zero, avg := 0.0, 42.0

	s := SummaryFrom(domain.Summary{TicketSummary: domain.TicketSummary{TotalTickets: 2, AvgFirstResponseSeconds: &zero}})
	assert.Nil(t, s.AvgFirstResponseSeconds)

	s = SummaryFrom(domain.Summary{TicketSummary: domain.TicketSummary{TotalTickets: 2, AvgFirstResponseSeconds: &avg}})
	require.NotNil(t, s.AvgFirstResponseSeconds)
	assert.Equal(t, 42.0, *s.AvgFirstResponseSeconds)
}

func TestEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(OK([]int{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(raw))

	raw, err = json.Marshal(Failure("Not found", "Route /x not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Not found","message":"Route /x not found"}`, string(raw))
}
