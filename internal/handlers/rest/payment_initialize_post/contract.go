//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_initialize_post_test
package payment_initialize_post

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Initialize(ctx context.Context, req entities.PaymentInitRequest) (*entities.PaymentInit, error)
}
