package delivery

import "fulfillment/internal/entities"

func isValidDeliveryID(deliveryID int64) bool {
	return deliveryID > 0
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	return status.IsValid()
}
