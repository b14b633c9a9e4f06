package order

import "fulfillment/internal/entities"

func ToDomain(o *OrderDB, lines []OrderLineDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:         o.ID,
		UserID:     o.UserID,
		Status:     entities.OrderStatusType(o.Status),
		PaymentRef: o.PaymentRef,
		TotalFee:   o.TotalFee,
		Currency:   o.Currency,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		Lines:      make([]entities.OrderLine, 0, len(lines)),
	}

	if o.CourierStatus != nil {
		status := entities.DeliveryStatusType(*o.CourierStatus)
		orderEntity.CourierStatus = &status
	}

	for _, line := range lines {
		orderLine := entities.OrderLine{
			SellerID:     line.SellerID,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			FreeDelivery: line.FreeDelivery,
		}
		if line.VendorLat != nil && line.VendorLng != nil {
			if c, err := entities.NewCoordinate(*line.VendorLat, *line.VendorLng); err == nil {
				orderLine.VendorLocation = &c
			}
		}
		orderEntity.Lines = append(orderEntity.Lines, orderLine)
	}

	return orderEntity
}

func FromDomainLine(orderID string, line entities.OrderLine) OrderLineDB {
	lineDB := OrderLineDB{
		OrderID:      orderID,
		SellerID:     line.SellerID,
		Quantity:     line.Quantity,
		UnitPrice:    line.UnitPrice,
		FreeDelivery: line.FreeDelivery,
	}
	if line.VendorLocation != nil {
		lineDB.VendorLat = &line.VendorLocation.Latitude
		lineDB.VendorLng = &line.VendorLocation.Longitude
	}
	return lineDB
}
