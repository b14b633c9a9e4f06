//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
