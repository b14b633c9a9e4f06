package courier

import "fulfillment/internal/entities"

func ToEarningDomain(e *EarningDB) *entities.Earning {
	if e == nil {
		return nil
	}

	return &entities.Earning{
		ID:        e.ID,
		CourierID: e.CourierID,
		OrderID:   e.OrderID,
		Amount:    e.Amount,
		CreatedAt: e.CreatedAt,
	}
}
