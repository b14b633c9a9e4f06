package delivery

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/notification"
	"fulfillment/pkg/logger"
)

type Delivery struct {
	log                 serviceLogger
	repository          Repository
	orderRepository     OrderRepository
	notificationService NotificationService
	courierService      CourierService
	txManager           TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	orderRepository OrderRepository,
	notificationService NotificationService,
	courierService CourierService,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		log:                 log,
		repository:          repository,
		orderRepository:     orderRepository,
		notificationService: notificationService,
		courierService:      courierService,
		txManager:           txManager,
	}
}

// ApplyDeliveryStatus persists a courier-driven status transition.
//
// The delivery row update and the history append are the authoritative write:
// they commit together or the call fails. The order's mirrored status,
// notifications and courier stats are derived from the transition and run
// after the commit; a failure there is logged and swallowed.
//
// Transitions are last-write-wins: any status may overwrite any other, and
// re-applying the current status is a no-op on the primary field apart from
// timestamps and a new history entry.
func (d *Delivery) ApplyDeliveryStatus(ctx context.Context, change entities.DeliveryStatusChange) (*entities.Delivery, error) {
	if !isValidDeliveryID(change.DeliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidStatus(change.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, change.Status)
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = d.repository.UpdateStatus(ctx, change)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		entry := entities.DeliveryStatusHistory{
			DeliveryID: updated.ID,
			Status:     change.Status,
			Location:   change.Location,
		}
		if change.Notes != nil {
			entry.Notes = *change.Notes
		}

		if err := d.repository.AppendStatusHistory(ctx, entry); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.applySideEffects(ctx, updated)

	return updated, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, deliveryID int64) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	deliveryEntity, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	history, err := d.repository.ListStatusHistory(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	deliveryEntity.History = history

	return deliveryEntity, nil
}

// applySideEffects runs the non-authoritative follow-ups of a committed status
// transition. Each one fails independently and never propagates.
func (d *Delivery) applySideEffects(ctx context.Context, updated *entities.Delivery) {
	sideLog := d.log.With(
		logger.NewField("delivery", updated.ID),
		logger.NewField("order", updated.OrderID),
		logger.NewField("status", updated.Status.String()),
	)

	order, err := d.orderRepository.GetByID(ctx, updated.OrderID)
	if err != nil {
		sideLog.With(
			logger.NewField("error", err),
		).Warn("skipping status side effects, parent order lookup failed")
		return
	}

	if err := d.orderRepository.MirrorCourierStatus(ctx, order.ID, updated.Status); err != nil {
		sideLog.With(
			logger.NewField("error", err),
		).Warn("failed to mirror courier status onto order")
	}

	d.dispatchNotifications(ctx, sideLog, order, updated.Status)

	if updated.Status == entities.DeliveryDelivered {
		err := d.courierService.RecordCompletedDelivery(ctx, updated.CourierID, order.ID, updated.Fee)
		if err != nil {
			sideLog.With(
				logger.NewField("error", err),
				logger.NewField("courier", updated.CourierID),
			).Warn("failed to record courier completed delivery")
		}
	}
}

// dispatchNotifications notifies the customer who scheduled the delivery and
// every distinct seller with items in the order.
func (d *Delivery) dispatchNotifications(ctx context.Context, sideLog logger.Logger, order *entities.Order, status entities.DeliveryStatusType) {
	severity := notification.SeverityForDeliveryStatus(status)
	title := fmt.Sprintf("Delivery %s", status)

	customerMsg := fmt.Sprintf("Your order %s is now %s", order.ID, status)
	if _, err := d.notificationService.Create(ctx, order.UserID, severity, title, customerMsg); err != nil {
		sideLog.With(
			logger.NewField("error", err),
			logger.NewField("recipient", order.UserID),
		).Warn("failed to create customer notification")
	}

	sellerMsg := fmt.Sprintf("Delivery for order %s is now %s", order.ID, status)
	for _, sellerID := range order.SellerIDs() {
		if _, err := d.notificationService.Create(ctx, sellerID, severity, title, sellerMsg); err != nil {
			sideLog.With(
				logger.NewField("error", err),
				logger.NewField("recipient", sellerID),
			).Warn("failed to create seller notification")
		}
	}
}
