package delivery

import "time"

type DeliveryDB struct {
	ID        int64
	OrderID   string
	CourierID *int64
	Status    string
	Fee       float64
	Notes     string
	LocLat    *float64
	LocLng    *float64
	ProofURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StatusHistoryDB struct {
	ID         int64
	DeliveryID int64
	Status     string
	Notes      string
	LocLat     *float64
	LocLng     *float64
	CreatedAt  time.Time
}
