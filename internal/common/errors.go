// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorIncorrectPassword = errors.New("incorrect password")

	// Credential errors.
	ErrorMalformedHash = errors.New("malformed password hash")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
