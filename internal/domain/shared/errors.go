package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Navigation errors
//
// The navigation entity itself signals rejection with plain bool returns;
// the application layer translates a rejection into one of these typed
// errors so callers can distinguish the reason.

type NavigationError struct {
	*DomainError
}

func NewNavigationError(message string) *NavigationError {
	return &NavigationError{DomainError: &DomainError{Message: message}}
}

type NavigationLockedError struct {
	*NavigationError
	Operation string
}

func NewNavigationLockedError(operation string) *NavigationLockedError {
	return &NavigationLockedError{
		NavigationError: NewNavigationError(fmt.Sprintf("navigation is locked: %s rejected", operation)),
		Operation:       operation,
	}
}

type InsufficientFuelError struct {
	*NavigationError
	Required  float64
	Available float64
}

func NewInsufficientFuelError(required, available float64) *InsufficientFuelError {
	return &InsufficientFuelError{
		NavigationError: NewNavigationError(fmt.Sprintf("insufficient fuel: need %.2f, have %.2f", required, available)),
		Required:        required,
		Available:       available,
	}
}

type SpeedLimitError struct {
	*NavigationError
	Requested float64
	Limit     float64
}

func NewSpeedLimitError(requested, limit float64) *SpeedLimitError {
	return &SpeedLimitError{
		NavigationError: NewNavigationError(fmt.Sprintf("velocity component %.2f exceeds speed limit %.2f", requested, limit)),
		Requested:       requested,
		Limit:           limit,
	}
}

type InvalidDurationError struct {
	*NavigationError
	Duration float64
}

func NewInvalidDurationError(duration float64) *InvalidDurationError {
	return &InvalidDurationError{
		NavigationError: NewNavigationError(fmt.Sprintf("time delta must be positive, got %.2f", duration)),
		Duration:        duration,
	}
}

type RouteExhaustedError struct {
	*NavigationError
}

func NewRouteExhaustedError() *RouteExhaustedError {
	return &RouteExhaustedError{
		NavigationError: NewNavigationError("no waypoints remaining in route"),
	}
}

type LockStateError struct {
	*NavigationError
}

func NewLockStateError(message string) *LockStateError {
	return &LockStateError{NavigationError: NewNavigationError(message)}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
