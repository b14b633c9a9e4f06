package charge_succeeded

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	paymentservice "fulfillment/internal/service/payment"
	"fulfillment/pkg/logger"
)

// chargeSucceededEvent is the payload published by the payments edge when a
// gateway charge settles.
type chargeSucceededEvent struct {
	Reference string `json:"reference"`
	UserID    string `json:"user_id"`
}

type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		paymentService:           paymentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.charge.succeeded: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("payment.charge.succeeded: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled, message left unmarked for
// reprocessing) and false to continue with the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event chargeSucceededEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.charge.succeeded handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("reference", event.Reference),
		logger.NewField("user", event.UserID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.charge.succeeded processing")

	verification, err := h.paymentService.Verify(ctx, event.UserID, event.Reference)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.charge.succeeded handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, paymentservice.ErrInvalidReference):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.charge.succeeded handler empty reference")

		case errors.Is(err, paymentservice.ErrAuthorizationMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.charge.succeeded handler user does not own transaction")

		case errors.Is(err, paymentservice.ErrUpstreamGateway):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.charge.succeeded handler gateway rejected verification")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.charge.succeeded handler failed to process charge")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("reference", event.Reference),
		logger.NewField("order", verification.Order.ID),
		logger.NewField("delivery", verification.Delivery.ID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("payment.charge.succeeded: processed")

	sess.MarkMessage(message, "")
	return false
}
