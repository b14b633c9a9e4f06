package delivery_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/dto"
	"fulfillment/internal/entities"
	"fulfillment/internal/service/delivery"
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
	var updateDTO dto.DeliveryStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	change := entities.DeliveryStatusChange{
		DeliveryID: updateDTO.DeliveryID,
		Status:     entities.DeliveryStatusType(updateDTO.Status),
		Notes:      updateDTO.Notes,
		ProofURL:   updateDTO.ProofURL,
	}
	if updateDTO.Location != nil {
		location, err := entities.NewCoordinate(updateDTO.Location.Latitude, updateDTO.Location.Longitude)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		change.Location = &location
	}

	updated, err := h.service.ApplyDeliveryStatus(r.Context(), change)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toDeliveryDTO(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDeliveryDTO(deliveryEntity *entities.Delivery) dto.Delivery {
	deliveryDTO := dto.Delivery{
		ID:        deliveryEntity.ID,
		OrderID:   deliveryEntity.OrderID,
		CourierID: deliveryEntity.CourierID,
		Status:    deliveryEntity.Status.String(),
		Fee:       deliveryEntity.Fee,
		Notes:     deliveryEntity.Notes,
		ProofURL:  deliveryEntity.ProofURL,
		CreatedAt: deliveryEntity.CreatedAt,
		UpdatedAt: deliveryEntity.UpdatedAt,
	}
	if deliveryEntity.Location != nil {
		deliveryDTO.Location = &dto.Coordinate{
			Latitude:  deliveryEntity.Location.Latitude,
			Longitude: deliveryEntity.Location.Longitude,
		}
	}
	return deliveryDTO
}
