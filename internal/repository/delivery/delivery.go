package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/delivery"
	"fulfillment/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, order_id, courier_id, status, fee, notes, location_lat, location_lng, proof_url, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts a pending delivery for a freshly materialized order.
func (r *Repository) Create(ctx context.Context, orderID string, fee float64) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, status, fee)
		VALUES ($1, $2, $3)
		RETURNING ` + deliveryColumns

	deliveryDB, err := r.scanDelivery(r.querier.QueryRow(ctx, query, orderID, entities.DeliveryPending.String(), fee))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("order %s already has a delivery: %w", orderID, err)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, payment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, deliveryID int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	deliveryDB, err := r.scanDelivery(r.querier.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE order_id = $1`

	deliveryDB, err := r.scanDelivery(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get by order error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

// UpdateStatus overwrites the delivery's status and any optional transition
// fields. Last write wins; there is no optimistic-concurrency token.
func (r *Repository) UpdateStatus(ctx context.Context, change entities.DeliveryStatusChange) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries").
		Set("status", change.Status.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if change.Notes != nil {
		builder = builder.Set("notes", *change.Notes)
	}
	if change.Location != nil {
		builder = builder.
			Set("location_lat", change.Location.Latitude).
			Set("location_lng", change.Location.Longitude)
	}
	if change.ProofURL != nil {
		builder = builder.Set("proof_url", *change.ProofURL)
	}

	builder = builder.
		Where(sq.Eq{"id": change.DeliveryID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	deliveryDB, err := r.scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) AppendStatusHistory(ctx context.Context, entry entities.DeliveryStatusHistory) error {
	query := `
		INSERT INTO delivery_status_history (delivery_id, status, notes, location_lat, location_lng)
		VALUES ($1, $2, $3, $4, $5)
	`

	var locLat, locLng *float64
	if entry.Location != nil {
		locLat = &entry.Location.Latitude
		locLng = &entry.Location.Longitude
	}

	_, err := r.querier.Exec(ctx, query, entry.DeliveryID, entry.Status.String(), entry.Notes, locLat, locLng)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("unexpected delivery repository history append error: %w", err)
	}

	return nil
}

func (r *Repository) ListStatusHistory(ctx context.Context, deliveryID int64) ([]entities.DeliveryStatusHistory, error) {
	query := `
		SELECT id, delivery_id, status, notes, location_lat, location_lng, created_at
		FROM delivery_status_history
		WHERE delivery_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository history list error: %w", err)
	}
	defer rows.Close()

	var history []entities.DeliveryStatusHistory
	for rows.Next() {
		var h StatusHistoryDB
		err := rows.Scan(&h.ID, &h.DeliveryID, &h.Status, &h.Notes, &h.LocLat, &h.LocLng, &h.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository history scan error: %w", err)
		}
		history = append(history, ToHistoryDomain(&h))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository history rows error: %w", err)
	}

	return history, nil
}

func (r *Repository) scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var d DeliveryDB
	err := row.Scan(
		&d.ID,
		&d.OrderID,
		&d.CourierID,
		&d.Status,
		&d.Fee,
		&d.Notes,
		&d.LocLat,
		&d.LocLng,
		&d.ProofURL,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
