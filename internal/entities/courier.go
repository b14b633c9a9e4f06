package entities

import "time"

type Courier struct {
	ID                  int64
	Name                string
	Phone               string
	CompletedDeliveries int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Earning is a payout record created for a courier on a delivered order.
type Earning struct {
	ID        int64
	CourierID int64
	OrderID   string
	Amount    float64
	CreatedAt time.Time
}
