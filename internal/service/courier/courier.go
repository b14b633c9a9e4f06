package courier

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
)

type Courier struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
	}
}

// RecordCompletedDelivery bumps the courier's completed-delivery counter and
// writes the matching earnings record in one transaction.
func (c *Courier) RecordCompletedDelivery(ctx context.Context, courierID int64, orderID string, amount float64) error {
	if courierID <= 0 {
		return ErrInvalidCourierID
	}

	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		if err := c.repository.IncrementCompletedDeliveries(ctx, courierID); err != nil {
			return fmt.Errorf("increment completed deliveries: %w", err)
		}

		_, err := c.repository.CreateEarning(ctx, entities.Earning{
			CourierID: courierID,
			OrderID:   orderID,
			Amount:    amount,
		})
		if err != nil {
			return fmt.Errorf("create earning: %w", err)
		}
		return nil
	})

	return err
}
