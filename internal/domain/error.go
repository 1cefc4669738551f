package domain

import "errors"

var (
	// Common domain errors
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotAuthenticated = errors.New("no authenticated session")
	ErrValidation       = errors.New("validation failed")
	ErrPurchaseInFlight = errors.New("purchase already in flight")
)
