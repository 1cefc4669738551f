package model

import "strings"

// AuthIntent is whether the current authentication attempt creates a new
// account or logs into an existing one.
type AuthIntent string

const (
	IntentLogin  AuthIntent = "login"
	IntentSignup AuthIntent = "signup"
)

// Credentials carries the raw form fields. DisplayName is only required for
// signup.
type Credentials struct {
	Email       string
	Password    string
	DisplayName string
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (c Credentials) Trimmed() Credentials {
	return Credentials{
		Email:       strings.TrimSpace(c.Email),
		Password:    strings.TrimSpace(c.Password),
		DisplayName: strings.TrimSpace(c.DisplayName),
	}
}

// Complete reports whether every field required by the intent is non-empty.
func (c Credentials) Complete(intent AuthIntent) bool {
	if c.Email == "" || c.Password == "" {
		return false
	}
	if intent == IntentSignup && c.DisplayName == "" {
		return false
	}
	return true
}
