//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fee_quote_post_test
package fee_quote_post

import (
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
	QuoteOrder(lines []entities.CartLine, customer *entities.Coordinate) (*entities.OrderFeeQuote, error)
}
