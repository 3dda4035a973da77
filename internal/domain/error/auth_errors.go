// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Identity errors raised while reading the caller from a bearer token.
var (
	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrForbidden is returned when the caller lacks the admin role.
	ErrForbidden = errors.New("forbidden")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (01XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-010002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-010003"

	// Access errors (02XXXX)
	ErrCodeForbidden   AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited AuthErrorCode = "AUTH-020002"
)
