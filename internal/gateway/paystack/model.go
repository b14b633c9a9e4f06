package paystack

// Wire shapes of the provider's transaction API. Amounts are minor currency
// units; metadata round-trips verbatim between initialize and verify.

type initializeRequest struct {
	Email       string       `json:"email"`
	Amount      int64        `json:"amount"`
	Currency    string       `json:"currency,omitempty"`
	CallbackURL string       `json:"callback_url,omitempty"`
	Metadata    metadataBody `json:"metadata"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Reference string       `json:"reference"`
		Status    string       `json:"status"`
		Amount    int64        `json:"amount"`
		Currency  string       `json:"currency"`
		Metadata  metadataBody `json:"metadata"`
	} `json:"data"`
}

type metadataBody struct {
	UserID       string             `json:"user_id"`
	CustomerLat  *float64           `json:"customer_lat,omitempty"`
	CustomerLng  *float64           `json:"customer_lng,omitempty"`
	Lines        []metadataCartLine `json:"lines"`
	TotalFee     float64            `json:"total_fee"`
	FeeCurrency  string             `json:"fee_currency"`
	SellerFees   map[string]float64 `json:"seller_fees,omitempty"`
	FreeSellers  []string           `json:"free_sellers,omitempty"`
	Distances    map[string]float64 `json:"distances_km,omitempty"`
	HasQuoteData bool               `json:"has_quote_data"`
}

type metadataCartLine struct {
	SellerID     string   `json:"seller_id"`
	Quantity     int32    `json:"quantity"`
	UnitPrice    float64  `json:"unit_price"`
	FreeDelivery bool     `json:"free_delivery"`
	VendorLat    *float64 `json:"vendor_lat,omitempty"`
	VendorLng    *float64 `json:"vendor_lng,omitempty"`
}
