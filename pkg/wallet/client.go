package wallet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultCurrency is reported when the API omits the currency field.
const DefaultCurrency = "USD"

// maxBodySize caps how much of a balance response is read.
const maxBodySize = 1 << 20

// Balance is a customer's wallet balance.
type Balance struct {
	CustomerID string
	Amount     float64
	Currency   string
}

// Client fetches balances over HTTP. Zero value is not usable; use NewClient.
type Client struct {
	baseURL string
	client  *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.client = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		if d > 0 {
			cl.client.Timeout = d
		}
	}
}

// NewClient creates a client for the wallet API rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Balance performs GET {baseURL}/customers/{customerID}/wallet.
func (c *Client) Balance(ctx context.Context, customerID string) (Balance, error) {
	if strings.TrimSpace(customerID) == "" {
		return Balance{}, ErrInvalidCustomerID
	}

	endpoint := c.baseURL + "/customers/" + url.PathEscape(customerID) + "/wallet"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Balance{}, fmt.Errorf("%w: %w", ErrBalanceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Balance{}, fmt.Errorf("%w: %w", ErrBalanceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Balance{}, fmt.Errorf("%w: unexpected status %d", ErrBalanceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Balance{}, fmt.Errorf("%w: read body: %w", ErrBalanceUnavailable, err)
	}
	return parseBalance(customerID, body)
}

func parseBalance(customerID string, body []byte) (Balance, error) {
	if !gjson.ValidBytes(body) {
		return Balance{}, fmt.Errorf("%w: malformed json", ErrBalanceUnavailable)
	}

	amount := gjson.GetBytes(body, "balance")
	if amount.Type != gjson.Number {
		return Balance{}, fmt.Errorf("%w: missing numeric balance", ErrBalanceUnavailable)
	}

	currency := strings.ToUpper(gjson.GetBytes(body, "currency").String())
	if currency == "" {
		currency = DefaultCurrency
	}

	return Balance{
		CustomerID: customerID,
		Amount:     amount.Float(),
		Currency:   currency,
	}, nil
}
