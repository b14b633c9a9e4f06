package entities

import "time"

type Order struct {
	ID         string
	UserID     string
	Status     OrderStatusType
	PaymentRef string
	TotalFee   float64
	Currency   string
	Lines      []OrderLine
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// CourierStatus mirrors the latest delivery status when the order uses
	// courier fulfillment. Nil for self-pickup orders.
	CourierStatus *DeliveryStatusType
}

type OrderLine struct {
	SellerID       string
	Quantity       int32
	UnitPrice      float64
	FreeDelivery   bool
	VendorLocation *Coordinate
}

// OrderStatusType is the order's own lifecycle for self-pickup flows. It is
// independent of the mirrored courier status.
type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "created"
	OrderCancelled OrderStatusType = "cancelled"
	OrderCompleted OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// SellerIDs returns the distinct seller identifiers across the order's lines,
// in first-seen order.
func (o *Order) SellerIDs() []string {
	seen := make(map[string]struct{}, len(o.Lines))
	sellers := make([]string, 0, len(o.Lines))
	for _, line := range o.Lines {
		if _, ok := seen[line.SellerID]; ok {
			continue
		}
		seen[line.SellerID] = struct{}{}
		sellers = append(sellers, line.SellerID)
	}
	return sellers
}
