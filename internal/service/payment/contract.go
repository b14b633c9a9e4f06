//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type Gateway interface {
	InitializeTransaction(ctx context.Context, email string, amountMinor int64, currency string, metadata entities.PaymentMetadata) (*entities.PaymentInit, error)
	VerifyTransaction(ctx context.Context, reference string) (*entities.PaymentTransaction, error)
}

type FeeResolver interface {
	QuoteOrder(lines []entities.CartLine, customer *entities.Coordinate) (*entities.OrderFeeQuote, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	Delete(ctx context.Context, orderID string) error
	GetByPaymentRef(ctx context.Context, reference string) (*entities.Order, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, orderID string, fee float64) (*entities.Delivery, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
