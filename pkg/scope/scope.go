package scope

import "errors"

// Payload is the authenticated identity carried by a token.
type Payload struct {
	UserID string
	Email  string
}

// Manager issues and verifies bearer tokens.
type Manager interface {
	Issue(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)
