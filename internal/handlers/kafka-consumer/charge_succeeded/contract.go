package charge_succeeded

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
	Verify(ctx context.Context, userID, reference string) (*entities.PaymentVerification, error)
}
