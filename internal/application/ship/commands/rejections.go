package commands

import (
	"math"

	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// The entity reports a rejected operation as a bare false. The helpers in
// this file reconstruct the reason from observable ship state so handlers
// can hand callers a typed error instead.

// maxAbsComponent returns the largest absolute component of a vector
func maxAbsComponent(v shared.Vector3) float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// moveRejection explains a failed translation
func moveRejection(ship *navigation.Ship, delta shared.Vector3, operation string) error {
	if ship.Locked() {
		return shared.NewNavigationLockedError(operation)
	}
	return shared.NewInsufficientFuelError(ship.EstimateFuel(delta.Length()), ship.FuelLevel())
}

// velocityRejection explains a failed velocity change
func velocityRejection(ship *navigation.Ship, requested shared.Vector3, operation string) error {
	if ship.Locked() {
		return shared.NewNavigationLockedError(operation)
	}
	return shared.NewSpeedLimitError(maxAbsComponent(requested), ship.MaxSpeed())
}
