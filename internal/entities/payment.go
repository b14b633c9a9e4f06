package entities

// PaymentInitRequest is everything needed to open a checkout session with the
// payment gateway for a pending delivery order.
type PaymentInitRequest struct {
	UserID           string
	Email            string
	Lines            []CartLine
	CustomerLocation *Coordinate
}

// PaymentInit is the gateway's checkout session handle.
type PaymentInit struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaymentMetadata travels to the gateway on initialize and comes back verbatim
// on verify. It is the only place the pending order is described before
// materialization.
type PaymentMetadata struct {
	UserID           string
	CustomerLocation *Coordinate
	Lines            []CartLine
	Quote            *OrderFeeQuote
}

type PaymentTransaction struct {
	Reference   string
	Status      string
	AmountMinor int64
	Currency    string
	Metadata    PaymentMetadata
}

// PaymentVerification is the outcome of a successful verify: the order and its
// pending delivery, materialized.
type PaymentVerification struct {
	Order    *Order
	Delivery *Delivery
}
