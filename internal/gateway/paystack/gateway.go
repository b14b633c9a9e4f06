package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/payment"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "paystack"

	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// errRetryableStatus marks gateway responses worth retrying (429 and 5xx).
var errRetryableStatus = errors.New("retryable gateway status")

type Gateway struct {
	cfg     Config
	client  httpDoer
	retrier retrier
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

func New(cfg Config, client httpDoer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		cfg:     cfg,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) InitializeTransaction(ctx context.Context, email string, amountMinor int64, currency string, metadata entities.PaymentMetadata) (*entities.PaymentInit, error) {
	reqBody := initializeRequest{
		Email:       email,
		Amount:      amountMinor,
		Currency:    currency,
		CallbackURL: g.cfg.CallbackURL,
		Metadata:    toMetadataBody(metadata),
	}

	var resp initializeResponse
	err := g.executeWithMetrics(ctx, "InitializeTransaction", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/transaction/initialize", reqBody, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: initialize: %w", payment.ErrUpstreamGateway, err)
	}

	if !resp.Status {
		return nil, fmt.Errorf("%w: initialize rejected: %s", payment.ErrUpstreamGateway, resp.Message)
	}

	return &entities.PaymentInit{
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
		Reference:        resp.Data.Reference,
	}, nil
}

func (g *Gateway) VerifyTransaction(ctx context.Context, reference string) (*entities.PaymentTransaction, error) {
	var resp verifyResponse
	err := g.executeWithMetrics(ctx, "VerifyTransaction", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: verify %s: %w", payment.ErrUpstreamGateway, reference, err)
	}

	if !resp.Status {
		return nil, fmt.Errorf("%w: verify %s rejected: %s", payment.ErrUpstreamGateway, reference, resp.Message)
	}

	return &entities.PaymentTransaction{
		Reference:   resp.Data.Reference,
		Status:      resp.Data.Status,
		AmountMinor: resp.Data.Amount,
		Currency:    resp.Data.Currency,
		Metadata:    toDomainMetadata(resp.Data.Metadata),
	}, nil
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, reqBody, respBody interface{}) error {
	var body io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.cfg.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %d", errRetryableStatus, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errRetryableStatus) {
		return true
	}
	// Network-level failures surface as url.Error from the http client.
	return errors.Is(err, io.ErrUnexpectedEOF) || isTemporaryNetErr(err)
}

func isTemporaryNetErr(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errRetryableStatus):
		return "exhausted_retries"
	default:
		return "error"
	}
}
