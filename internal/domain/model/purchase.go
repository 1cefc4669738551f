package model

import (
	"math"

	"github.com/oklog/ulid/v2"

	"digital-gold-assistant/internal/domain"
)

// PurchaseRequest is a single purchase attempt. It is ephemeral: created when
// the user submits an amount, gone once the attempt resolves.
type PurchaseRequest struct {
	ID     string // sortable attempt id, used for logs and metrics
	Amount float64
}

func NewPurchaseRequest(amount float64) (*PurchaseRequest, error) {
	if !ValidAmount(amount) {
		return nil, domain.ErrInvalidArgument
	}
	return &PurchaseRequest{ID: ulid.Make().String(), Amount: amount}, nil
}

// ValidAmount reports whether amount is a positive finite number.
func ValidAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// GramsForAmount converts a monetary amount to gold grams at the given price,
// rounded to 5 decimal places to match the backend's ledger precision.
func GramsForAmount(amount, pricePerGram float64) float64 {
	if pricePerGram <= 0 {
		return 0
	}
	return math.Round(amount/pricePerGram*1e5) / 1e5
}
