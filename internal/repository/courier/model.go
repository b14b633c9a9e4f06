package courier

import "time"

type EarningDB struct {
	ID        int64
	CourierID int64
	OrderID   string
	Amount    float64
	CreatedAt time.Time
}
