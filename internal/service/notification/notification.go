package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
)

// TTL is the fixed lifetime of every notification from the moment it is
// created.
const TTL = 7 * 24 * time.Hour

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) Create(ctx context.Context, recipientID string, severity entities.NotificationSeverity, title, message string) (*entities.Notification, error) {
	if strings.TrimSpace(recipientID) == "" {
		return nil, ErrMissingRecipient
	}

	now := time.Now().UTC()
	created, err := s.repository.Create(ctx, entities.Notification{
		RecipientID: recipientID,
		Severity:    severity,
		Title:       title,
		Message:     message,
		CreatedAt:   now,
		ExpiresAt:   now.Add(TTL),
	})
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	return created, nil
}

func (s *Service) DeleteExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repository.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired notifications: %w", err)
	}
	return deleted, nil
}

// SeverityForDeliveryStatus maps a delivery status to the severity its
// notifications carry: delivered reads as success, cancelled and failed as
// errors, everything else as informational.
func SeverityForDeliveryStatus(status entities.DeliveryStatusType) entities.NotificationSeverity {
	switch status {
	case entities.DeliveryDelivered:
		return entities.NotificationSuccess
	case entities.DeliveryCancelled, entities.DeliveryFailed:
		return entities.NotificationError
	default:
		return entities.NotificationInfo
	}
}
