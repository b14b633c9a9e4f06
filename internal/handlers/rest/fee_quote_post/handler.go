package fee_quote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/dto"
	"fulfillment/internal/entities"
	"fulfillment/internal/service/fee"
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
	var quoteDTO dto.FeeQuoteRequest
	err := json.NewDecoder(r.Body).Decode(&quoteDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	lines := make([]entities.CartLine, 0, len(quoteDTO.Lines))
	for _, lineDTO := range quoteDTO.Lines {
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
		lines = append(lines, line)
	}

	var customer *entities.Coordinate
	if quoteDTO.CustomerLocation != nil {
		coordinate, err := entities.NewCoordinate(quoteDTO.CustomerLocation.Latitude, quoteDTO.CustomerLocation.Longitude)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		customer = &coordinate
	}

	quote, err := h.service.QuoteOrder(lines, customer)
	if err != nil {
		switch {
		case errors.Is(err, fee.ErrEmptyCart),
			errors.Is(err, fee.ErrMissingCustomerLocation),
			errors.Is(err, entities.ErrInvalidCoordinate):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	bySeller := make(map[string]dto.SellerFee, len(quote.BySeller))
	for sellerID, breakdown := range quote.BySeller {
		bySeller[sellerID] = dto.SellerFee{
			Fee:        breakdown.Fee,
			DistanceKm: breakdown.DistanceKm,
			Free:       breakdown.Free,
		}
	}

	response := dto.FeeQuoteResponse{
		TotalFee: quote.TotalFee,
		Currency: quote.Currency,
		BySeller: bySeller,
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
