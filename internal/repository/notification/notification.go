package notification

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
)

const notificationColumns = `id, recipient_id, severity, title, message, created_at, expires_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (recipient_id, severity, title, message, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + notificationColumns

	var n NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		notification.RecipientID,
		notification.Severity.String(),
		notification.Title,
		notification.Message,
		notification.ExpiresAt,
	).Scan(
		&n.ID,
		&n.RecipientID,
		&n.Severity,
		&n.Title,
		&n.Message,
		&n.CreatedAt,
		&n.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&n), nil
}

// DeleteExpired removes notifications past their expiry and reports how many
// rows were purged.
func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM notifications WHERE expires_at <= NOW()`

	tag, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository delete expired error: %w", err)
	}

	return tag.RowsAffected(), nil
}
