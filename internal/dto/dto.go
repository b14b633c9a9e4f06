// Package dto holds the JSON request and response bodies of the REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CartLine struct {
	SellerID       string      `json:"seller_id"`
	Quantity       int32       `json:"quantity"`
	UnitPrice      float64     `json:"unit_price"`
	FreeDelivery   bool        `json:"free_delivery"`
	VendorLocation *Coordinate `json:"vendor_location,omitempty"`
}

type FeeQuoteRequest struct {
	CustomerLocation *Coordinate `json:"customer_location"`
	Lines            []CartLine  `json:"lines"`
}

type SellerFee struct {
	Fee        float64  `json:"fee"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	Free       bool     `json:"free"`
}

type FeeQuoteResponse struct {
	TotalFee float64              `json:"total_fee"`
	Currency string               `json:"currency"`
	BySeller map[string]SellerFee `json:"by_seller"`
}

type DeliveryStatusUpdate struct {
	DeliveryID int64       `json:"delivery_id"`
	Status     string      `json:"status"`
	Notes      *string     `json:"notes,omitempty"`
	Location   *Coordinate `json:"location,omitempty"`
	ProofURL   *string     `json:"proof_url,omitempty"`
}

type DeliveryStatusHistoryEntry struct {
	Status    string      `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	Location  *Coordinate `json:"location,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type Delivery struct {
	ID        int64                        `json:"id"`
	OrderID   string                       `json:"order_id"`
	CourierID int64                        `json:"courier_id,omitempty"`
	Status    string                       `json:"status"`
	Fee       float64                      `json:"fee"`
	Notes     string                       `json:"notes,omitempty"`
	Location  *Coordinate                  `json:"location,omitempty"`
	ProofURL  string                       `json:"proof_url,omitempty"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
	History   []DeliveryStatusHistoryEntry `json:"history,omitempty"`
}

type PaymentInitializeRequest struct {
	Email            string      `json:"email"`
	CustomerLocation *Coordinate `json:"customer_location"`
	Lines            []CartLine  `json:"lines"`
}

type PaymentInitializeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type PaymentVerifyResponse struct {
	OrderID    string  `json:"order_id"`
	DeliveryID int64   `json:"delivery_id"`
	TotalFee   float64 `json:"total_fee"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
}
