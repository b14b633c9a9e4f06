package payment_initialize_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/dto"
	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/middlewares/auth"
	"fulfillment/internal/service/fee"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var initDTO dto.PaymentInitializeRequest
	err := json.NewDecoder(r.Body).Decode(&initDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := entities.PaymentInitRequest{
		UserID: identity.UserID,
		Email:  initDTO.Email,
		Lines:  make([]entities.CartLine, 0, len(initDTO.Lines)),
	}
	for _, lineDTO := range initDTO.Lines {
		line := entities.CartLine{
			SellerID:     lineDTO.SellerID,
			Quantity:     lineDTO.Quantity,
			UnitPrice:    lineDTO.UnitPrice,
			FreeDelivery: lineDTO.FreeDelivery,
		}
		if lineDTO.VendorLocation != nil {
			vendor, err := entities.NewCoordinate(lineDTO.VendorLocation.Latitude, lineDTO.VendorLocation.Longitude)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			line.VendorLocation = &vendor
		}
		req.Lines = append(req.Lines, line)
	}
	if initDTO.CustomerLocation != nil {
		customer, err := entities.NewCoordinate(initDTO.CustomerLocation.Latitude, initDTO.CustomerLocation.Longitude)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		req.CustomerLocation = &customer
	}

	init, err := h.service.Initialize(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingEmail),
			errors.Is(err, payment.ErrMissingUserID),
			errors.Is(err, fee.ErrEmptyCart),
			errors.Is(err, fee.ErrMissingCustomerLocation),
			errors.Is(err, entities.ErrInvalidCoordinate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrUpstreamGateway):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentInitializeResponse{
		AuthorizationURL: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
		Reference:        init.Reference,
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
