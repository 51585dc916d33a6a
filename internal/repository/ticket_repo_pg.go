package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/jackc/pgx/v5"
)

const ticketColumns = `id, event_id, holder_id, code, price_paid_cents, status, cancel_reason, purchased_at, updated_at`

func scanTicket(row scanner) (*domain.Ticket, error) {
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.EventID, &t.HolderID, &t.Code, &t.PricePaidCents, &t.Status, &t.CancelReason,
		&t.PurchasedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *pgRepository) queryTickets(ctx context.Context, sql string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err, "query tickets")
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, translate(err, "scan ticket")
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}

func (r *pgRepository) CountHeldTickets(ctx context.Context, eventID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM tickets WHERE event_id=$1 AND status IN ($2, $3)`,
		eventID, domain.TicketStatusActive, domain.TicketStatusCompleted).Scan(&n)
	if err != nil {
		return 0, translate(err, "count held tickets")
	}
	return n, nil
}

func (r *pgRepository) InsertTicket(ctx context.Context, t *domain.Ticket) error {
	err := r.q.QueryRow(ctx, `INSERT INTO tickets (event_id, holder_id, code, price_paid_cents, status, purchased_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id`,
		t.EventID, t.HolderID, t.Code, t.PricePaidCents, t.Status, t.PurchasedAt).Scan(&t.ID)
	t.UpdatedAt = t.PurchasedAt
	return translate(err, "insert ticket")
}

func (r *pgRepository) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id))
	if err != nil {
		return nil, translate(err, "get ticket")
	}
	return t, nil
}

func (r *pgRepository) LockTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		return nil, translate(err, "lock ticket")
	}
	return t, nil
}

func (r *pgRepository) LockTicketByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE code=$1 FOR UPDATE`, code))
	if err != nil {
		return nil, translate(err, "lock ticket by code")
	}
	return t, nil
}

func (r *pgRepository) UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus, reason string, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE tickets SET status=$1, cancel_reason=$2, updated_at=$3 WHERE id=$4`, status, reason, at, id)
	if err != nil {
		return translate(err, "update ticket status")
	}
	if tag.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows, "update ticket status")
	}
	return nil
}

func (r *pgRepository) TransitionActiveTickets(ctx context.Context, eventID int64, to domain.TicketStatus, reason string, at time.Time) ([]domain.Ticket, error) {
	return r.queryTickets(ctx, `UPDATE tickets SET status=$1, cancel_reason=$2, updated_at=$3
		WHERE event_id=$4 AND status=$5
		RETURNING `+ticketColumns,
		to, reason, at, eventID, domain.TicketStatusActive)
}

func (r *pgRepository) ListTickets(ctx context.Context, f TicketFilter) ([]domain.Ticket, error) {
	var (
		where []string
		args  []any
	)
	if f.EventID != 0 {
		args = append(args, f.EventID)
		where = append(where, fmt.Sprintf("event_id=$%d", len(args)))
	}
	if f.HolderID != "" {
		args = append(args, f.HolderID)
		where = append(where, fmt.Sprintf("holder_id=$%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status=$%d", len(args)))
	}
	sql := `SELECT ` + ticketColumns + ` FROM tickets`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	return r.queryTickets(ctx, sql+` ORDER BY id`, args...)
}

func (r *pgRepository) ListCancelledTicketIDsBefore(ctx context.Context, cutoff time.Time) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM tickets WHERE status=$1 AND updated_at < $2 ORDER BY id`, domain.TicketStatusCancelled, cutoff)
	if err != nil {
		return nil, translate(err, "list cancelled tickets")
	}
	return collectIDs(rows)
}

func (r *pgRepository) DeleteTicket(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return translate(err, "delete ticket")
	}
	if tag.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows, "delete ticket")
	}
	return nil
}
