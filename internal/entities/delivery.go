package entities

import "time"

type Delivery struct {
	ID        int64
	OrderID   string
	CourierID int64
	Status    DeliveryStatusType
	Fee       float64
	Notes     string
	Location  *Coordinate
	ProofURL  string
	CreatedAt time.Time
	UpdatedAt time.Time

	History []DeliveryStatusHistory
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryAccepted  DeliveryStatusType = "accepted"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
	DeliveryFailed    DeliveryStatusType = "failed"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

func (t DeliveryStatusType) IsValid() bool {
	switch t {
	case DeliveryPending, DeliveryAccepted, DeliveryPickedUp,
		DeliveryInTransit, DeliveryDelivered, DeliveryCancelled, DeliveryFailed:
		return true
	default:
		return false
	}
}

// DeliveryStatusChange carries one status transition for a delivery.
// Notes, Location and ProofURL are optional courier-supplied fields.
type DeliveryStatusChange struct {
	DeliveryID int64
	Status     DeliveryStatusType
	Notes      *string
	Location   *Coordinate
	ProofURL   *string
}

// DeliveryStatusHistory is an immutable record of one applied transition.
type DeliveryStatusHistory struct {
	ID         int64
	DeliveryID int64
	Status     DeliveryStatusType
	Notes      string
	Location   *Coordinate
	CreatedAt  time.Time
}
