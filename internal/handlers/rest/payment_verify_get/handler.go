package payment_verify_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"fulfillment/internal/dto"
	"fulfillment/internal/pkg/middlewares/auth"
	"fulfillment/internal/service/payment"
	"fulfillment/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	reference := mux.Vars(r)["reference"]

	verification, err := h.service.Verify(r.Context(), identity.UserID, reference)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidReference):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrAuthorizationMismatch):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, payment.ErrUpstreamGateway):
			w.WriteHeader(http.StatusPaymentRequired)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentVerifyResponse{
		OrderID:    verification.Order.ID,
		DeliveryID: verification.Delivery.ID,
		TotalFee:   verification.Order.TotalFee,
		Currency:   verification.Order.Currency,
		Status:     verification.Delivery.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
