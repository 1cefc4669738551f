package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"digital-gold-assistant/internal/domain/ports/adapter"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := zerolog.Nop()
	c, err := NewClient(srv.URL, 5*time.Second, &log)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRejectsBadURL(t *testing.T) {
	log := zerolog.Nop()
	if _, err := NewClient("not a url", 0, &log); err == nil {
		t.Fatal("expected error for invalid base url")
	}
	if _, err := NewClient("", 0, &log); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestLoginSuccess(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.com" {
			t.Errorf("email = %v", body["email"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"email": "a@b.com", "name": "A", "goldBalance": 10,
		})
	}))

	res, err := c.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Email != "a@b.com" || res.Name != "A" || res.GoldBalance != 10 {
		t.Fatalf("res = %+v", res)
	}
}

func TestLoginRejectionBecomesRemoteError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
	}))

	_, err := c.Login(context.Background(), "a@b.com", "bad")
	var remote *adapter.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if remote.StatusCode != http.StatusUnauthorized || remote.Message != "Invalid email or password" {
		t.Fatalf("remote = %+v", remote)
	}
}

func TestQueryCarriesRedirectFlag(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "let's buy", "redirectToPurchase": true,
		})
	}))

	res, err := c.Query(context.Background(), "a@b.com", "buy gold")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !res.RedirectToPurchase || res.Message != "let's buy" {
		t.Fatalf("res = %+v", res)
	}
}

func TestPurchaseGold(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/purchase-gold" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Success!", "updatedGoldBalance": 25.5,
		})
	}))

	res, err := c.PurchaseGold(context.Background(), "a@b.com", 500)
	if err != nil {
		t.Fatalf("PurchaseGold: %v", err)
	}
	if res.UpdatedGoldBalance != 25.5 {
		t.Fatalf("res = %+v", res)
	}
}

func TestFetchBalanceEscapesEmail(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("email"); got != "a+b@c.com" {
			t.Errorf("email query = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]float64{"goldBalance": 7})
	}))

	balance, err := c.FetchBalance(context.Background(), "a+b@c.com")
	if err != nil || balance != 7 {
		t.Fatalf("balance = %v, err = %v", balance, err)
	}
}

func TestGoldPrice(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]float64{"pricePerGram": 5000})
	}))

	price, err := c.GoldPrice(context.Background())
	if err != nil || price != 5000 {
		t.Fatalf("price = %v, err = %v", price, err)
	}
}

func TestTransportFailureIsNotRemoteError(t *testing.T) {
	log := zerolog.Nop()
	c, err := NewClient("http://127.0.0.1:1", time.Second, &log)
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.GoldPrice(context.Background())
	if err == nil {
		t.Fatal("expected transport failure")
	}
	var remote *adapter.RemoteError
	if errors.As(err, &remote) {
		t.Fatal("transport failure must not be a RemoteError")
	}
}
