//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	IncrementCompletedDeliveries(ctx context.Context, courierID int64) error
	CreateEarning(ctx context.Context, earning entities.Earning) (*entities.Earning, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
