package entities

type CartLine struct {
	SellerID       string
	Quantity       int32
	UnitPrice      float64
	FreeDelivery   bool
	VendorLocation *Coordinate
}

// SellerFeeBreakdown is the delivery fee resolved for one seller group.
// DistanceKm is nil when the seller's vendor coordinate is unknown.
type SellerFeeBreakdown struct {
	Fee        float64
	DistanceKm *float64
	Free       bool
}

type OrderFeeQuote struct {
	TotalFee float64
	Currency string
	BySeller map[string]SellerFeeBreakdown
}
