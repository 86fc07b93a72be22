package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sepapay/internal/application/payment/gateway"
	"sepapay/internal/shared/config"
	"sepapay/internal/shared/logger"
)

const (
	defaultAPIBaseURL = "https://api.stripe.com/v1"
	// apiVersion is pinned so gateway-side rollouts cannot change response
	// shapes under us.
	apiVersion     = "2019-05-16"
	requestTimeout = 10 // seconds
	// maxResponseSize bounds decoded gateway responses (256KB).
	maxResponseSize = 256 << 10
)

// Client talks to the Stripe REST API with form-encoded requests. The
// secret key travels with each call; the client itself holds no
// credential state. No retries, a single bounded round-trip per call.
type Client struct {
	baseURL    string
	apiVersion string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg *config.GatewayConfig, logger logger.Interface) *Client {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	version := cfg.APIVersion
	if version == "" {
		version = apiVersion
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = requestTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiVersion: version,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		logger: logger,
	}
}

var _ gateway.PaymentGateway = (*Client)(nil)

func (c *Client) CreateSource(ctx context.Context, creds gateway.Credentials, req gateway.CreateSourceRequest) (*gateway.Source, error) {
	form := url.Values{}
	form.Set("type", req.Type)
	form.Set("currency", req.Currency)
	form.Set("sepa_debit[iban]", req.IBAN)
	form.Set("owner[name]", req.OwnerName)
	if req.OwnerEmail != "" {
		form.Set("owner[email]", req.OwnerEmail)
	}
	if req.MandateNotificationMethod != "" {
		form.Set("mandate[notification_method]", req.MandateNotificationMethod)
	}

	var src gateway.Source
	if err := c.post(ctx, creds, "/sources", form, &src); err != nil {
		return nil, err
	}
	return &src, nil
}

func (c *Client) CreateCustomer(ctx context.Context, creds gateway.Credentials, req gateway.CreateCustomerRequest) (*gateway.Customer, error) {
	form := url.Values{}
	form.Set("source", req.SourceID)
	if req.Email != "" {
		form.Set("email", req.Email)
	}

	var customer gateway.Customer
	if err := c.post(ctx, creds, "/customers", form, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCharge(ctx context.Context, creds gateway.Credentials, req gateway.CreateChargeRequest) (*gateway.Charge, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", req.Currency)
	form.Set("customer", req.CustomerID)
	form.Set("source", req.SourceID)
	if req.Description != "" {
		form.Set("description", req.Description)
	}

	var charge gateway.Charge
	if err := c.post(ctx, creds, "/charges", form, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) ListEvents(ctx context.Context, creds gateway.Credentials, req gateway.ListEventsRequest) (*gateway.EventList, error) {
	query := url.Values{}
	if req.EndingBefore != "" {
		query.Set("ending_before", req.EndingBefore)
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	endpoint := "/events"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var list gateway.EventList
	if err := c.get(ctx, creds, endpoint, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) post(ctx context.Context, creds gateway.Credentials, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, creds, out)
}

func (c *Client) get(ctx context.Context, creds gateway.Credentials, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, creds, out)
}

// do executes one round-trip. Gateway-reported failures arrive as an
// error object in the body and are decoded into the response struct for
// the caller to interpret; only transport and decode problems return an
// error here.
func (c *Client) do(req *http.Request, creds gateway.Credentials, out any) error {
	req.SetBasicAuth(creds.SecretKey, "")
	req.Header.Set("Stripe-Version", c.apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Errorw("failed to decode gateway response",
			"status", resp.StatusCode,
			"path", req.URL.Path,
			"error", err,
		)
		return fmt.Errorf("failed to decode gateway response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warnw("gateway returned an error response",
			"status", resp.StatusCode,
			"path", req.URL.Path,
		)
	}

	return nil
}
