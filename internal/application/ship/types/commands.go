package types

import (
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// Ship command types - shared between handlers and the mission runner to
// avoid circular imports

// MoveShipCommand - Command to translate the ship by a relative delta
type MoveShipCommand struct {
	Delta shared.Vector3
}

// MoveShipResponse - Response from move ship command
type MoveShipResponse struct {
	Status        string // "moved" or "hold" for a zero delta
	Position      shared.Vector3
	FuelConsumed  float64
	FuelRemaining float64
}

// SetPositionCommand - Command to teleport the ship to absolute coordinates
type SetPositionCommand struct {
	Position shared.Vector3
}

// SetPositionResponse - Response from set position command
type SetPositionResponse struct {
	Status   string
	Position shared.Vector3
}

// SetVelocityCommand - Command to replace the velocity vector
type SetVelocityCommand struct {
	Velocity shared.Vector3
}

// SetVelocityResponse - Response from set velocity command
type SetVelocityResponse struct {
	Status   string
	Velocity shared.Vector3
}

// AccelerateCommand - Command to apply thrust over a duration
type AccelerateCommand struct {
	Acceleration shared.Vector3
	Dt           float64
}

// AccelerateResponse - Response from accelerate command
type AccelerateResponse struct {
	Status        string
	Velocity      shared.Vector3
	FuelConsumed  float64
	FuelRemaining float64
}

// StepTimeCommand - Command to advance the simulation by a time step
type StepTimeCommand struct {
	Dt float64
}

// StepTimeResponse - Response from step time command
type StepTimeResponse struct {
	Status        string
	Position      shared.Vector3
	FuelRemaining float64
}

// NavigateToTargetCommand - Command to point the velocity at a target
type NavigateToTargetCommand struct {
	Target shared.Vector3
	Speed  *float64 // nil = ship's maximum speed
}

// NavigateToTargetResponse - Response from navigate to target command
type NavigateToTargetResponse struct {
	Status   string // "navigating" or "arrived" when already at the target
	Velocity shared.Vector3
	Heading  navigation.Heading
	Distance float64
}

// AddWaypointCommand - Command to append a waypoint to the route
type AddWaypointCommand struct {
	Waypoint shared.Vector3
}

// AddWaypointResponse - Response from add waypoint command
type AddWaypointResponse struct {
	Status             string
	WaypointsRemaining int
}

// ClearWaypointsCommand - Command to empty the route
type ClearWaypointsCommand struct{}

// ClearWaypointsResponse - Response from clear waypoints command
type ClearWaypointsResponse struct {
	Status string
}

// AdvanceWaypointCommand - Command to move the route cursor forward
type AdvanceWaypointCommand struct{}

// AdvanceWaypointResponse - Response from advance waypoint command
type AdvanceWaypointResponse struct {
	Status             string
	WaypointsRemaining int
}

// FollowRouteCommand - Command to steer toward the current waypoint,
// advancing past it within the threshold
type FollowRouteCommand struct {
	Threshold float64 // <= 0 uses the default arrival threshold
}

// FollowRouteResponse - Response from follow route command
type FollowRouteResponse struct {
	Status             string // "steering", "waypoint_reached" or "route_complete"
	Velocity           shared.Vector3
	WaypointsRemaining int
	RouteComplete      bool
}

// RefuelShipCommand - Command to take on fuel
type RefuelShipCommand struct {
	Amount *float64 // nil = refuel to full
}

// RefuelShipResponse - Response from refuel ship command
type RefuelShipResponse struct {
	Status       string // "refueled", "no_fuel_added" or "already_full"
	FuelAdded    float64
	CurrentFuel  float64
	FuelCapacity float64
}

// SetModeCommand - Command to switch the navigation mode
type SetModeCommand struct {
	Mode navigation.Mode
}

// SetModeResponse - Response from set mode command
type SetModeResponse struct {
	Status string
	Mode   navigation.Mode
}

// SetNavigationLockCommand - Command to engage or release the control lock
type SetNavigationLockCommand struct {
	Locked bool
}

// SetNavigationLockResponse - Response from set navigation lock command
type SetNavigationLockResponse struct {
	Status string // "locked" or "unlocked"
	Locked bool
}

// EmergencyStopCommand - Command to kill velocity and enter emergency mode
type EmergencyStopCommand struct{}

// EmergencyStopResponse - Response from emergency stop command
type EmergencyStopResponse struct {
	Status   string
	Mode     navigation.Mode
	Velocity shared.Vector3
}
