package delivery

import "fulfillment/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	deliveryEntity := &entities.Delivery{
		ID:        d.ID,
		OrderID:   d.OrderID,
		Status:    entities.DeliveryStatusType(d.Status),
		Fee:       d.Fee,
		Notes:     d.Notes,
		ProofURL:  d.ProofURL,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.CourierID != nil {
		deliveryEntity.CourierID = *d.CourierID
	}
	deliveryEntity.Location = toCoordinate(d.LocLat, d.LocLng)

	return deliveryEntity
}

func ToHistoryDomain(h *StatusHistoryDB) entities.DeliveryStatusHistory {
	return entities.DeliveryStatusHistory{
		ID:         h.ID,
		DeliveryID: h.DeliveryID,
		Status:     entities.DeliveryStatusType(h.Status),
		Notes:      h.Notes,
		Location:   toCoordinate(h.LocLat, h.LocLng),
		CreatedAt:  h.CreatedAt,
	}
}

func toCoordinate(lat, lng *float64) *entities.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}
	c, err := entities.NewCoordinate(*lat, *lng)
	if err != nil {
		return nil
	}
	return &c
}
