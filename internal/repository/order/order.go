package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/delivery"
	"fulfillment/internal/service/payment"
)

const orderColumns = `id, user_id, status, courier_status, payment_ref, total_fee, currency, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the order row and its lines. A partially inserted order is
// removed before returning the error so the caller never observes a line-less
// order.
func (r *Repository) Create(ctx context.Context, order entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, user_id, status, payment_ref, total_fee, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + orderColumns

	orderDB, err := r.scanOrder(r.querier.QueryRow(
		ctx,
		query,
		order.ID,
		order.UserID,
		order.Status.String(),
		order.PaymentRef,
		order.TotalFee,
		order.Currency,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("order with payment reference %s already exists: %w", order.PaymentRef, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	lines := make([]OrderLineDB, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, FromDomainLine(orderDB.ID, line))
	}

	if err := r.insertLines(ctx, lines); err != nil {
		if delErr := r.Delete(ctx, orderDB.ID); delErr != nil {
			return nil, fmt.Errorf("unexpected order repository lines error: %w (cleanup failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("unexpected order repository lines error: %w", err)
	}

	return ToDomain(orderDB, lines), nil
}

func (r *Repository) Delete(ctx context.Context, orderID string) error {
	query := `DELETE FROM orders WHERE id = $1`

	_, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	orderDB, err := r.scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	lines, err := r.listLines(ctx, orderDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(orderDB, lines), nil
}

func (r *Repository) GetByPaymentRef(ctx context.Context, reference string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE payment_ref = $1`

	orderDB, err := r.scanOrder(r.querier.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by reference error: %w", err)
	}

	lines, err := r.listLines(ctx, orderDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(orderDB, lines), nil
}

// MirrorCourierStatus overwrites the denormalized courier status on the order
// row. Last write wins.
func (r *Repository) MirrorCourierStatus(ctx context.Context, orderID string, status entities.DeliveryStatusType) error {
	query := `UPDATE orders SET courier_status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository mirror error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) insertLines(ctx context.Context, lines []OrderLineDB) error {
	query := `
		INSERT INTO order_lines (order_id, seller_id, quantity, unit_price, free_delivery, vendor_lat, vendor_lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, line := range lines {
		_, err := r.querier.Exec(
			ctx,
			query,
			line.OrderID,
			line.SellerID,
			line.Quantity,
			line.UnitPrice,
			line.FreeDelivery,
			line.VendorLat,
			line.VendorLng,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) listLines(ctx context.Context, orderID string) ([]OrderLineDB, error) {
	query := `
		SELECT order_id, seller_id, quantity, unit_price, free_delivery, vendor_lat, vendor_lng
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id ASC
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository lines list error: %w", err)
	}
	defer rows.Close()

	var lines []OrderLineDB
	for rows.Next() {
		var line OrderLineDB
		err := rows.Scan(
			&line.OrderID,
			&line.SellerID,
			&line.Quantity,
			&line.UnitPrice,
			&line.FreeDelivery,
			&line.VendorLat,
			&line.VendorLng,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository lines scan error: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository lines rows error: %w", err)
	}

	return lines, nil
}

func (r *Repository) scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Status,
		&o.CourierStatus,
		&o.PaymentRef,
		&o.TotalFee,
		&o.Currency,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
