package order

import "time"

type OrderDB struct {
	ID            string
	UserID        string
	Status        string
	CourierStatus *string
	PaymentRef    string
	TotalFee      float64
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderLineDB struct {
	OrderID      string
	SellerID     string
	Quantity     int32
	UnitPrice    float64
	FreeDelivery bool
	VendorLat    *float64
	VendorLng    *float64
}
