package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
)

func (r *pgRepository) AddWaitlistEntry(ctx context.Context, e domain.WaitlistEntry) (bool, error) {
	tag, err := r.q.Exec(ctx, `INSERT INTO event_waitlist (event_id, user_id, joined_at) VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id) DO NOTHING`, e.EventID, e.UserID, e.JoinedAt)
	if err != nil {
		return false, translate(err, "insert waitlist entry")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *pgRepository) RemoveWaitlistEntry(ctx context.Context, eventID int64, userID string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM event_waitlist WHERE event_id=$1 AND user_id=$2`, eventID, userID)
	if err != nil {
		return false, translate(err, "delete waitlist entry")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *pgRepository) ListWaitlist(ctx context.Context, eventID int64) ([]domain.WaitlistEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT event_id, user_id, joined_at FROM event_waitlist WHERE event_id=$1 ORDER BY joined_at`, eventID)
	if err != nil {
		return nil, translate(err, "list waitlist")
	}
	defer rows.Close()

	entries := make([]domain.WaitlistEntry, 0)
	for rows.Next() {
		var e domain.WaitlistEntry
		if err := rows.Scan(&e.EventID, &e.UserID, &e.JoinedAt); err != nil {
			return nil, translate(err, "scan waitlist entry")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *pgRepository) GetUserRole(ctx context.Context, userID string) (domain.Role, error) {
	var role domain.Role
	if err := r.q.QueryRow(ctx, `SELECT role FROM users WHERE id=$1`, userID).Scan(&role); err != nil {
		return "", translate(err, "get user role")
	}
	return role, nil
}

func (r *pgRepository) SetUserRole(ctx context.Context, userID string, role domain.Role) error {
	_, err := r.q.Exec(ctx, `INSERT INTO users (id, role) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET role=EXCLUDED.role, updated_at=now()`, userID, role)
	return translate(err, "set user role")
}

func (r *pgRepository) MarkReminderSent(ctx context.Context, eventID int64, window domain.ReminderWindow, at time.Time) (bool, error) {
	tag, err := r.q.Exec(ctx, `INSERT INTO event_reminders (event_id, window_name, sent_at) VALUES ($1, $2, $3)
		ON CONFLICT (event_id, window_name) DO NOTHING`, eventID, window, at)
	if err != nil {
		return false, translate(err, "mark reminder")
	}
	return tag.RowsAffected() == 1, nil
}
