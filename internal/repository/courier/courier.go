package courier

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/courier"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) IncrementCompletedDeliveries(ctx context.Context, courierID int64) error {
	query := `
		UPDATE couriers
		SET completed_deliveries = completed_deliveries + 1, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.querier.Exec(ctx, query, courierID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository increment error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

func (r *Repository) CreateEarning(ctx context.Context, earning entities.Earning) (*entities.Earning, error) {
	query := `
		INSERT INTO courier_earnings (courier_id, order_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, courier_id, order_id, amount, created_at
	`

	var e EarningDB
	err := r.querier.QueryRow(ctx, query, earning.CourierID, earning.OrderID, earning.Amount).Scan(
		&e.ID,
		&e.CourierID,
		&e.OrderID,
		&e.Amount,
		&e.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository earning create error: %w", err)
	}

	return ToEarningDomain(&e), nil
}
