//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, deliveryID int64) (*entities.Delivery, error)
	UpdateStatus(ctx context.Context, change entities.DeliveryStatusChange) (*entities.Delivery, error)
	AppendStatusHistory(ctx context.Context, entry entities.DeliveryStatusHistory) error
	ListStatusHistory(ctx context.Context, deliveryID int64) ([]entities.DeliveryStatusHistory, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	MirrorCourierStatus(ctx context.Context, orderID string, status entities.DeliveryStatusType) error
}

type NotificationService interface {
	Create(ctx context.Context, recipientID string, severity entities.NotificationSeverity, title, message string) (*entities.Notification, error)
}

type CourierService interface {
	RecordCompletedDelivery(ctx context.Context, courierID int64, orderID string, amount float64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
