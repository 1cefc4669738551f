// File: internal/infra/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"digital-gold-assistant/internal/domain/ports/adapter"
	"digital-gold-assistant/internal/infra/metrics"
)

var _ adapter.Backend = (*Client)(nil)

// Client implements adapter.Backend over the JSON/HTTP contract.
// Non-2xx responses become *adapter.RemoteError carrying the body's error
// text; anything else is a transport failure.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zerolog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", baseURL)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: u.String(),
		client:  &http.Client{Timeout: timeout},
		log:     logger,
	}, nil
}

func (c *Client) Signup(ctx context.Context, email, password, name string) (*adapter.SignupResult, error) {
	var out struct {
		Message string `json:"message"`
	}
	payload := map[string]any{"email": email, "password": password, "name": name}
	if err := c.postJSON(ctx, "signup", "/api/signup", payload, &out); err != nil {
		return nil, err
	}
	return &adapter.SignupResult{Message: out.Message}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*adapter.LoginResult, error) {
	var out struct {
		Email       string  `json:"email"`
		Name        string  `json:"name"`
		GoldBalance float64 `json:"goldBalance"`
	}
	payload := map[string]any{"email": email, "password": password}
	if err := c.postJSON(ctx, "login", "/api/login", payload, &out); err != nil {
		return nil, err
	}
	return &adapter.LoginResult{Email: out.Email, Name: out.Name, GoldBalance: out.GoldBalance}, nil
}

func (c *Client) Query(ctx context.Context, email, userQuery string) (*adapter.QueryResult, error) {
	var out struct {
		Message            string `json:"message"`
		RedirectToPurchase bool   `json:"redirectToPurchase"`
	}
	payload := map[string]any{"email": email, "userQuery": userQuery}
	if err := c.postJSON(ctx, "query", "/api/query", payload, &out); err != nil {
		return nil, err
	}
	return &adapter.QueryResult{Message: out.Message, RedirectToPurchase: out.RedirectToPurchase}, nil
}

func (c *Client) PurchaseGold(ctx context.Context, email string, amount float64) (*adapter.PurchaseResult, error) {
	var out struct {
		Message            string  `json:"message"`
		UpdatedGoldBalance float64 `json:"updatedGoldBalance"`
	}
	payload := map[string]any{"email": email, "amount": amount}
	if err := c.postJSON(ctx, "purchase-gold", "/api/purchase-gold", payload, &out); err != nil {
		return nil, err
	}
	return &adapter.PurchaseResult{Message: out.Message, UpdatedGoldBalance: out.UpdatedGoldBalance}, nil
}

func (c *Client) FetchBalance(ctx context.Context, email string) (float64, error) {
	var out struct {
		GoldBalance float64 `json:"goldBalance"`
	}
	path := "/api/user?email=" + url.QueryEscape(email)
	if err := c.getJSON(ctx, "user", path, &out); err != nil {
		return 0, err
	}
	return out.GoldBalance, nil
}

func (c *Client) GoldPrice(ctx context.Context) (float64, error) {
	var out struct {
		PricePerGram float64 `json:"pricePerGram"`
	}
	if err := c.getJSON(ctx, "gold-price", "/api/gold-price", &out); err != nil {
		return 0, err
	}
	return out.PricePerGram, nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, payload, out any) error {
	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req, out)
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.client.Do(req)
	ms := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.ObserveBackendCall(op, false, ms)
		c.log.Debug().Str("op", op).Err(err).Msg("backend call failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveBackendCall(op, false, ms)
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		c.log.Debug().Str("op", op).Int("status", resp.StatusCode).Msg("backend rejected call")
		return &adapter.RemoteError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	metrics.ObserveBackendCall(op, true, ms)
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}
