package adapter

import (
	"context"
	"fmt"
)

// RemoteError is a rejection by the backend: the call completed but the
// response carried a failure status. Message holds the server-provided error
// text verbatim; callers decide whether to surface it or substitute a fixed
// one. Any other error from a Backend method is a transport failure.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend rejected request (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend rejected request (%d)", e.StatusCode)
}

type SignupResult struct {
	Message string
}

type LoginResult struct {
	Email       string
	Name        string
	GoldBalance float64
}

type QueryResult struct {
	Message            string
	RedirectToPurchase bool
}

type PurchaseResult struct {
	Message            string
	UpdatedGoldBalance float64
}

// PriceSource looks up the current gold price per gram. Split out of Backend
// so the lookup can be decorated with a cache.
type PriceSource interface {
	GoldPrice(ctx context.Context) (float64, error)
}

// Backend is the remote collaborator that verifies credentials, answers
// free-text queries and keeps the balance ledger.
type Backend interface {
	PriceSource

	Signup(ctx context.Context, email, password, name string) (*SignupResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Query(ctx context.Context, email, userQuery string) (*QueryResult, error)
	PurchaseGold(ctx context.Context, email string, amount float64) (*PurchaseResult, error)
	FetchBalance(ctx context.Context, email string) (float64, error)
}
