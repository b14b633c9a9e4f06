package notification_cleanup

import (
	"context"
	"time"

	"fulfillment/pkg/logger"
)

type Service interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type NotificationCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewNotificationCleanup(log logger.Logger, service Service, interval time.Duration) *NotificationCleanup {
	return &NotificationCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (n *NotificationCleanup) TTL() time.Duration {
	return n.interval
}

func (n *NotificationCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	rowsAffected, err := n.service.DeleteExpired(ctxWithTimeout)

	if rowsAffected > 0 {
		n.log.With(
			logger.NewField("expired_notifications", rowsAffected),
		).Info("notification cleanup")
	}

	return err
}

func (n *NotificationCleanup) Info() string {
	return "notification cleanup"
}
