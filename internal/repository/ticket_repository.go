package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/spec-kit/support-ops-api/internal/domain"
	"github.com/spec-kit/support-ops-api/internal/persistence"
)

// TicketRepository reads tickets and their conversation history.
type TicketRepository interface {
	List(ctx context.Context, filter domain.TicketFilter, page domain.Page) (domain.TicketPage, error)
	GetByID(ctx context.Context, ticketID string) (*domain.Ticket, error)
	ListEvents(ctx context.Context, ticketID string) ([]domain.TicketEvent, error)
	ListMessages(ctx context.Context, ticketID string) ([]domain.TicketMessage, error)
}

type ticketRepository struct {
	exec    executor
	dialect persistence.Dialect
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(db *sqlx.DB, dialect persistence.Dialect, logger *zap.Logger) TicketRepository {
	return &ticketRepository{exec: newExecutor(db, logger), dialect: dialect}
}

func (r *ticketRepository) List(ctx context.Context, filter domain.TicketFilter, page domain.Page) (domain.TicketPage, error) {
	countSQL, dataSQL, args, err := r.listQueries(filter, page)
	if err != nil {
		return domain.TicketPage{}, err
	}

	var total int64
	if _, err := r.exec.selectOne(ctx, &total, countSQL, args); err != nil {
		return domain.TicketPage{}, err
	}

	items := []domain.TicketListItem{}
	if err := r.exec.selectAll(ctx, &items, dataSQL, args); err != nil {
		return domain.TicketPage{}, err
	}

	return domain.TicketPage{Items: items, Total: total, Page: page}, nil
}

func (r *ticketRepository) GetByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	query, args, err := r.dialect.Builder().
		From(goqu.T("tickets")).
		Select(
			goqu.C("ticket_id"),
			goqu.C("customer_id"),
			goqu.C("merchant_id"),
			goqu.C("status"),
			goqu.C("channel"),
			goqu.C("priority"),
			goqu.C("issue_type"),
			goqu.C("summary"),
			goqu.C("created_at"),
			goqu.C("first_response_at"),
			goqu.C("resolved_at"),
			goqu.C("sla_due_at"),
		).
		Where(goqu.C("ticket_id").Eq(ticketID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var ticket domain.Ticket
	found, err := r.exec.selectOne(ctx, &ticket, query, args)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &ticket, nil
}

func (r *ticketRepository) ListEvents(ctx context.Context, ticketID string) ([]domain.TicketEvent, error) {
	query, args, err := r.dialect.Builder().
		From(goqu.T("ticket_events")).
		Select(
			goqu.C("ticket_event_id"),
			goqu.C("ticket_id"),
			goqu.C("event_type"),
			goqu.C("event_time"),
			goqu.C("actor_type"),
			goqu.C("actor_agent_id"),
			goqu.C("old_value"),
			goqu.C("new_value"),
			goqu.C("payload_json"),
		).
		Where(goqu.C("ticket_id").Eq(ticketID)).
		Order(goqu.C("event_time").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	events := []domain.TicketEvent{}
	if err := r.exec.selectAll(ctx, &events, query, args); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *ticketRepository) ListMessages(ctx context.Context, ticketID string) ([]domain.TicketMessage, error) {
	query, args, err := r.dialect.Builder().
		From(goqu.T("ticket_messages")).
		Select(
			goqu.C("message_id"),
			goqu.C("ticket_id"),
			goqu.C("message_time"),
			goqu.C("actor_type"),
			goqu.C("agent_id"),
			goqu.C("channel"),
			goqu.C("message_text"),
			goqu.C("message_summary"),
			goqu.C("sentiment"),
		).
		Where(goqu.C("ticket_id").Eq(ticketID)).
		Order(goqu.C("message_time").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	messages := []domain.TicketMessage{}
	if err := r.exec.selectAll(ctx, &messages, query, args); err != nil {
		return nil, err
	}
	return messages, nil
}

// listQueries builds the COUNT and page SELECT over the same predicate; both
// statements take the returned args.
func (r *ticketRepository) listQueries(filter domain.TicketFilter, page domain.Page) (string, string, []any, error) {
	conds := ticketConditions(filter)
	base := r.dialect.Builder().From(goqu.T("tickets").As("t")).Where(conds...).Prepared(true)

	countSQL, args, err := base.Select(goqu.COUNT(goqu.Star()).As("total")).ToSQL()
	if err != nil {
		return "", "", nil, fmt.Errorf("build ticket count: %w", err)
	}

	elapsed := r.dialect.SecondsBetween("t.created_at", "COALESCE(t.first_response_at, "+r.dialect.UTCNow()+")")
	dataSQL, _, err := base.
		Select(
			goqu.I("t.ticket_id"),
			goqu.I("t.customer_id"),
			goqu.I("t.merchant_id"),
			goqu.I("t.status"),
			goqu.I("t.channel"),
			goqu.I("t.priority"),
			goqu.I("t.issue_type"),
			goqu.I("t.summary"),
			goqu.I("t.created_at"),
			goqu.I("t.first_response_at"),
			goqu.I("t.resolved_at"),
			goqu.L(elapsed).As("first_response_seconds"),
		).
		Order(goqu.I("t.created_at").Desc()).
		ToSQL()
	if err != nil {
		return "", "", nil, fmt.Errorf("build ticket page: %w", err)
	}

	return countSQL, withPage(dataSQL, page), args, nil
}

func ticketConditions(filter domain.TicketFilter) []exp.Expression {
	conds := []exp.Expression{}
	if filter.Status != nil {
		conds = append(conds, goqu.I("t.status").Eq(*filter.Status))
	}
	if filter.Channel != nil {
		conds = append(conds, goqu.I("t.channel").Eq(*filter.Channel))
	}
	if filter.Priority != nil {
		conds = append(conds, goqu.I("t.priority").Eq(*filter.Priority))
	}
	if filter.IssueType != nil {
		conds = append(conds, goqu.I("t.issue_type").Eq(*filter.IssueType))
	}
	if filter.CreatedFrom != nil {
		conds = append(conds, goqu.I("t.created_at").Gte(*filter.CreatedFrom))
	}
	if filter.CreatedTo != nil {
		conds = append(conds, goqu.I("t.created_at").Lt(*filter.CreatedTo))
	}
	return conds
}
