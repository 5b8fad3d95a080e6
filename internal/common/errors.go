// Package common defines shared constants and sentinel errors used across
// client and server layers of VoxKeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Record-level errors.
	ErrorNotFound        = errors.New("user not found")
	ErrorAlreadyExists   = errors.New("username already exists")
	ErrSessionNotFound   = errors.New("session not found")
	ErrorValidation      = errors.New("validation error")
	ErrSignatureMissing  = errors.New("no voice signature enrolled")
	ErrDimensionMismatch = fmt.Errorf("embedding dimension mismatch: %w", ErrorValidation)

	// Verification outcomes. These are expected business results, not faults.
	ErrInvalidCredential = errors.New("invalid password")
	ErrSpoofDetected     = errors.New("spoofed or synthetic voice detected")
	ErrLowSimilarity     = errors.New("voice verification failed")
	ErrInsufficientInput = errors.New("password or voice sample required")

	// Operational faults.
	ErrProcessingFailure  = errors.New("failed to process voice sample")
	ErrRelayUnavailable   = fmt.Errorf("chat relay unavailable: %w", ErrProcessingFailure)
	ErrPersistenceFailure = errors.New("failed to persist store")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// IsOperational reports whether err is a fault worth logging as an error,
// as opposed to an expected rejection.
func IsOperational(err error) bool {
	return errors.Is(err, ErrProcessingFailure) || errors.Is(err, ErrPersistenceFailure)
}
