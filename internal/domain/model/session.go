package model

import (
	"digital-gold-assistant/internal/domain"
)

// Identity is the authenticated user as returned by the login endpoint.
type Identity struct {
	Email       string
	DisplayName string
}

// Session is the single source of truth for who is logged in and what they
// own. The identity and the cached gold balance are established together and
// the balance is meaningful only while an identity is present.
//
// Session is not safe for concurrent use; the owning controller serializes
// all event handlers.
type Session struct {
	identity    *Identity
	goldBalance float64
}

func NewSession() *Session {
	return &Session{}
}

// SetAuthenticated establishes identity and balance atomically. Both are set
// or neither is.
func (s *Session) SetAuthenticated(id Identity, goldBalance float64) error {
	if id.Email == "" {
		return domain.ErrInvalidArgument
	}
	if goldBalance < 0 {
		return domain.ErrInvalidArgument
	}
	s.identity = &id
	s.goldBalance = goldBalance
	return nil
}

// UpdateBalance replaces the cached balance. It is a guarded no-op when no
// identity is set or the new balance is negative; it reports whether the
// update was applied.
func (s *Session) UpdateBalance(goldBalance float64) bool {
	if s.identity == nil || goldBalance < 0 {
		return false
	}
	s.goldBalance = goldBalance
	return true
}

func (s *Session) Identity() (Identity, bool) {
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) Balance() float64 { return s.goldBalance }

func (s *Session) Authenticated() bool { return s.identity != nil }

// Clear ends the session. Not exercised by the current flows but the state
// must be representable.
func (s *Session) Clear() {
	s.identity = nil
	s.goldBalance = 0
}
