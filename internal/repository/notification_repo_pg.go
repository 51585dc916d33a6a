package repository

import (
	"context"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/jackc/pgx/v5"
)

func (r *pgRepository) InsertNotification(ctx context.Context, n *domain.Notification) error {
	err := r.q.QueryRow(ctx, `INSERT INTO notifications (recipient_id, title, body, entity_type, entity_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		n.RecipientID, n.Title, n.Body, n.EntityType, n.EntityID, n.CreatedAt).Scan(&n.ID)
	return translate(err, "insert notification")
}

func (r *pgRepository) ListNotifications(ctx context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error) {
	sql := `SELECT id, recipient_id, title, body, entity_type, entity_id, is_read, created_at
		FROM notifications WHERE recipient_id=$1`
	if unreadOnly {
		sql += ` AND NOT is_read`
	}
	rows, err := r.q.Query(ctx, sql+` ORDER BY created_at DESC, id DESC`, recipientID)
	if err != nil {
		return nil, translate(err, "list notifications")
	}
	defer rows.Close()

	list := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Title, &n.Body, &n.EntityType, &n.EntityID, &n.Read, &n.CreatedAt); err != nil {
			return nil, translate(err, "scan notification")
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *pgRepository) MarkNotificationRead(ctx context.Context, id int64, recipientID string) error {
	tag, err := r.q.Exec(ctx, `UPDATE notifications SET is_read=true WHERE id=$1 AND recipient_id=$2`, id, recipientID)
	if err != nil {
		return translate(err, "mark notification read")
	}
	if tag.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows, "mark notification read")
	}
	return nil
}
