package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

// gatewaySuccess is the transaction status the gateway reports for a settled
// charge.
const gatewaySuccess = "success"

type Payment struct {
	log                serviceLogger
	gateway            Gateway
	feeResolver        FeeResolver
	orderRepository    OrderRepository
	deliveryRepository DeliveryRepository
}

func New(
	log serviceLogger,
	gateway Gateway,
	feeResolver FeeResolver,
	orderRepository OrderRepository,
	deliveryRepository DeliveryRepository,
) *Payment {
	return &Payment{
		log:                log,
		gateway:            gateway,
		feeResolver:        feeResolver,
		orderRepository:    orderRepository,
		deliveryRepository: deliveryRepository,
	}
}

// Initialize quotes the delivery fee for the cart, converts it to minor
// currency units and opens a checkout session with the gateway. The pending
// order travels only inside the gateway metadata until Verify materializes it.
func (p *Payment) Initialize(ctx context.Context, req entities.PaymentInitRequest) (*entities.PaymentInit, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, ErrMissingUserID
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, ErrMissingEmail
	}

	quote, err := p.feeResolver.QuoteOrder(req.Lines, req.CustomerLocation)
	if err != nil {
		return nil, fmt.Errorf("quote delivery fee: %w", err)
	}

	amountMinor := toMinorUnits(quote.TotalFee)
	metadata := entities.PaymentMetadata{
		UserID:           req.UserID,
		CustomerLocation: req.CustomerLocation,
		Lines:            req.Lines,
		Quote:            quote,
	}

	init, err := p.gateway.InitializeTransaction(ctx, req.Email, amountMinor, quote.Currency, metadata)
	if err != nil {
		return nil, fmt.Errorf("initialize transaction: %w", err)
	}

	return init, nil
}

// Verify re-fetches the gateway's transaction record by reference and, on a
// settled charge, materializes the order and its pending delivery. Delivery
// creation failure triggers a compensating delete of the order. Verifying an
// already-materialized reference returns the existing records.
func (p *Payment) Verify(ctx context.Context, userID, reference string) (*entities.PaymentVerification, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, ErrInvalidReference
	}

	existing, err := p.orderRepository.GetByPaymentRef(ctx, reference)
	if err == nil {
		if existing.UserID != userID {
			return nil, ErrAuthorizationMismatch
		}
		return p.verificationFor(ctx, existing)
	}
	if !errors.Is(err, ErrOrderNotFound) {
		return nil, fmt.Errorf("look up order by reference: %w", err)
	}

	tx, err := p.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("verify transaction %s: %w", reference, err)
	}
	if tx.Status != gatewaySuccess {
		return nil, fmt.Errorf("%w: transaction %s has status %q", ErrUpstreamGateway, reference, tx.Status)
	}
	if tx.Metadata.UserID != userID {
		return nil, ErrAuthorizationMismatch
	}

	return p.materialize(ctx, tx)
}

func (p *Payment) materialize(ctx context.Context, tx *entities.PaymentTransaction) (*entities.PaymentVerification, error) {
	quote := tx.Metadata.Quote
	totalFee := float64(tx.AmountMinor) / 100
	currency := tx.Currency
	if quote != nil {
		totalFee = quote.TotalFee
		currency = quote.Currency
	}

	order := entities.Order{
		ID:         uuid.NewString(),
		UserID:     tx.Metadata.UserID,
		Status:     entities.OrderCreated,
		PaymentRef: tx.Reference,
		TotalFee:   totalFee,
		Currency:   currency,
		Lines:      toOrderLines(tx.Metadata.Lines),
	}

	createdOrder, err := p.orderRepository.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	createdDelivery, err := p.deliveryRepository.Create(ctx, createdOrder.ID, totalFee)
	if err != nil {
		// Compensate: the order must not survive without its delivery.
		if delErr := p.orderRepository.Delete(ctx, createdOrder.ID); delErr != nil {
			p.log.With(
				logger.NewField("error", delErr),
				logger.NewField("order", createdOrder.ID),
			).Error("failed to compensate order after delivery creation failure")
		}
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	return &entities.PaymentVerification{
		Order:    createdOrder,
		Delivery: createdDelivery,
	}, nil
}

func (p *Payment) verificationFor(ctx context.Context, order *entities.Order) (*entities.PaymentVerification, error) {
	deliveryEntity, err := p.deliveryRepository.GetByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get delivery for order %s: %w", order.ID, err)
	}

	return &entities.PaymentVerification{
		Order:    order,
		Delivery: deliveryEntity,
	}, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func toOrderLines(lines []entities.CartLine) []entities.OrderLine {
	orderLines := make([]entities.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, entities.OrderLine{
			SellerID:       line.SellerID,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			FreeDelivery:   line.FreeDelivery,
			VendorLocation: line.VendorLocation,
		})
	}
	return orderLines
}
