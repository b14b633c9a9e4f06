package delivery_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntity, err := h.service.GetDelivery(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toDeliveryDTO(deliveryEntity))
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
		History:   make([]dto.DeliveryStatusHistoryEntry, 0, len(deliveryEntity.History)),
	}
	if deliveryEntity.Location != nil {
		deliveryDTO.Location = &dto.Coordinate{
			Latitude:  deliveryEntity.Location.Latitude,
			Longitude: deliveryEntity.Location.Longitude,
		}
	}
	for _, entry := range deliveryEntity.History {
		entryDTO := dto.DeliveryStatusHistoryEntry{
			Status:    entry.Status.String(),
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		}
		if entry.Location != nil {
			entryDTO.Location = &dto.Coordinate{
				Latitude:  entry.Location.Latitude,
				Longitude: entry.Location.Longitude,
			}
		}
		deliveryDTO.History = append(deliveryDTO.History, entryDTO)
	}
	return deliveryDTO
}
