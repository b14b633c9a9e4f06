package notification

import "fulfillment/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Severity:    entities.NotificationSeverity(n.Severity),
		Title:       n.Title,
		Message:     n.Message,
		CreatedAt:   n.CreatedAt,
		ExpiresAt:   n.ExpiresAt,
	}
}
