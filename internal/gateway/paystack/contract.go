package paystack

import "net/http"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config points the gateway at the payment provider's REST API.
type Config struct {
	BaseURL     string
	SecretKey   string
	CallbackURL string
}
