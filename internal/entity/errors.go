package entity

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors below wrap one of them, so callers may match either.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDeliveryFailed    = errors.New("delivery failed")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnauthenticated   = errors.New("unauthenticated")
)

var (
	ErrCardNotBound     = fmt.Errorf("card %w", ErrNotFound)
	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrNotFound)
	ErrSessionNotFound  = fmt.Errorf("liveness session %w", ErrNotFound)
	ErrNoFaceFound      = fmt.Errorf("face %w", ErrNotFound)

	ErrNoFaceEnrolled       = fmt.Errorf("%w: no face enrolled", ErrInvalidState)
	ErrLivenessNotConfirmed = fmt.Errorf("%w: liveness not confirmed", ErrInvalidState)

	ErrTooManyFrames = errors.New("too many frames")

	ErrUnknownNotificationType = fmt.Errorf("%w: unknown notification type", ErrInvalidArgument)
	ErrNoDeliveryChannel       = fmt.Errorf("%w: no delivery channel configured", ErrDeliveryFailed)
)
