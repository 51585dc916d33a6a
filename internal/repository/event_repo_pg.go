package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, organiser_id, title, description, venue, capacity, price_cents,
	start_at, end_at, status, status_changed_at, created_at, updated_at`

func scanEvent(row scanner) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(&e.ID, &e.OrganiserID, &e.Title, &e.Description, &e.Venue, &e.Capacity, &e.PriceCents,
		&e.StartAt, &e.EndAt, &e.Status, &e.StatusChangedAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *pgRepository) queryEvents(ctx context.Context, sql string, args ...any) ([]domain.Event, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err, "query events")
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, translate(err, "scan event")
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *pgRepository) CreateEvent(ctx context.Context, e *domain.Event) error {
	if e.Status == "" {
		e.Status = domain.EventStatusActive
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	e.StatusChangedAt, e.UpdatedAt = e.CreatedAt, e.CreatedAt
	err := r.q.QueryRow(ctx, `INSERT INTO events (organiser_id, title, description, venue, capacity, price_cents,
		start_at, end_at, status, status_changed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10, $10)
		RETURNING id`,
		e.OrganiserID, e.Title, e.Description, e.Venue, e.Capacity, e.PriceCents,
		e.StartAt, e.EndAt, e.Status, e.CreatedAt).Scan(&e.ID)
	return translate(err, "insert event")
}

func (r *pgRepository) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(r.q.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id=$1`, id))
	if err != nil {
		return nil, translate(err, "get event")
	}
	return e, nil
}

func (r *pgRepository) LockEvent(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(r.q.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		return nil, translate(err, "lock event")
	}
	return e, nil
}

func (r *pgRepository) ListEvents(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	if status == "" {
		return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY start_at`)
	}
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE status=$1 ORDER BY start_at`, status)
}

func (r *pgRepository) ListEventsByOrganiser(ctx context.Context, organiserID string, status domain.EventStatus) ([]domain.Event, error) {
	if status == "" {
		return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE organiser_id=$1 ORDER BY id`, organiserID)
	}
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE organiser_id=$1 AND status=$2 ORDER BY id`, organiserID, status)
}

func (r *pgRepository) UpdateEventStatus(ctx context.Context, id int64, status domain.EventStatus, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE events SET status=$1, status_changed_at=$2, updated_at=$2 WHERE id=$3`, status, at, id)
	if err != nil {
		return translate(err, "update event status")
	}
	if tag.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows, "update event status")
	}
	return nil
}

func (r *pgRepository) UpdateEventCapacity(ctx context.Context, id int64, capacity int, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE events SET capacity=$1, updated_at=$2 WHERE id=$3`, capacity, at, id)
	if err != nil {
		return translate(err, "update event capacity")
	}
	if tag.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows, "update event capacity")
	}
	return nil
}

func (r *pgRepository) AddEventCategory(ctx context.Context, eventID int64, category string) error {
	_, err := r.q.Exec(ctx, `INSERT INTO event_categories (event_id, category) VALUES ($1, $2) ON CONFLICT DO NOTHING`, eventID, category)
	return translate(err, "insert event category")
}

func (r *pgRepository) AddEventFlag(ctx context.Context, f *domain.EventFlag) error {
	err := r.q.QueryRow(ctx, `INSERT INTO event_flags (event_id, reporter_id, reason) VALUES ($1, $2, $3) RETURNING id, created_at`,
		f.EventID, f.ReporterID, f.Reason).Scan(&f.ID, &f.CreatedAt)
	return translate(err, "insert event flag")
}

func (r *pgRepository) DeleteEvent(ctx context.Context, id int64) error {
	for _, stmt := range []string{
		`DELETE FROM event_categories WHERE event_id=$1`,
		`DELETE FROM event_flags WHERE event_id=$1`,
		`DELETE FROM event_waitlist WHERE event_id=$1`,
		`DELETE FROM event_reminders WHERE event_id=$1`,
		`DELETE FROM tickets WHERE event_id=$1`,
	} {
		if _, err := r.q.Exec(ctx, stmt, id); err != nil {
			return translate(err, "delete event dependants")
		}
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return translate(err, "delete event")
	}
	if tag.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows, "delete event")
	}
	return nil
}

func (r *pgRepository) ListEndedActiveEventIDs(ctx context.Context, now time.Time) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM events WHERE status=$1 AND end_at <= $2 ORDER BY id`, domain.EventStatusActive, now)
	if err != nil {
		return nil, translate(err, "list ended events")
	}
	return collectIDs(rows)
}

func (r *pgRepository) ListActiveEventsStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE status=$1 AND start_at >= $2 AND start_at <= $3 ORDER BY start_at`,
		domain.EventStatusActive, from, to)
}

func (r *pgRepository) ListCancelledEventIDsBefore(ctx context.Context, cutoff time.Time) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM events WHERE status=$1 AND status_changed_at < $2 ORDER BY id`, domain.EventStatusCancelled, cutoff)
	if err != nil {
		return nil, translate(err, "list cancelled events")
	}
	return collectIDs(rows)
}
