package navigation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

func newTestShip() *navigation.Ship {
	return navigation.NewShip(navigation.DefaultShipSpec())
}

func TestNewShip_InitialState(t *testing.T) {
	// Act
	ship := newTestShip()

	// Assert
	assert.Equal(t, shared.Vector3{}, ship.Position())
	assert.Equal(t, shared.Vector3{}, ship.Velocity())
	assert.Equal(t, 1000.0, ship.FuelLevel())
	assert.Equal(t, 100.0, ship.FuelPercentage())
	assert.Equal(t, navigation.ModeManual, ship.Mode())
	assert.False(t, ship.Locked())
	assert.False(t, ship.EngineActive())
	assert.Equal(t, 0, ship.WaypointsRemaining())
	assert.Equal(t, 1, ship.TrackLength(), "track starts seeded with the initial position")
}

func TestNewShipAt_RecordsInitialPosition(t *testing.T) {
	start := shared.NewVector3(10, -20, 30)

	ship := navigation.NewShipAt(navigation.DefaultShipSpec(), start)

	assert.Equal(t, start, ship.Position())
	require.Equal(t, 1, ship.TrackLength())
	assert.Equal(t, start, ship.Track()[0])
}

func TestNewShip_ZeroSpecFallsBackToDefaults(t *testing.T) {
	ship := navigation.NewShip(navigation.ShipSpec{})

	assert.Equal(t, 1000.0, ship.Spec().FuelCapacity)
	assert.Equal(t, 1.0, ship.Spec().FuelRate)
	assert.Equal(t, 100.0, ship.Spec().MaxSpeed)
	assert.Equal(t, 100, ship.Spec().HistoryLimit)
}

// Move

func TestShip_Move(t *testing.T) {
	// Arrange
	ship := newTestShip()

	// Act
	ok := ship.Move(shared.NewVector3(1, 2, 3))

	// Assert
	require.True(t, ok)
	assert.Equal(t, shared.NewVector3(1, 2, 3), ship.Position())
	assert.InDelta(t, 1000.0-math.Sqrt(14), ship.FuelLevel(), 1e-9)
	assert.Equal(t, 2, ship.TrackLength())
}

func TestShip_MoveZeroDeltaSucceedsWithoutSideEffects(t *testing.T) {
	ship := newTestShip()

	ok := ship.Move(shared.Vector3{})

	require.True(t, ok)
	assert.Equal(t, 1000.0, ship.FuelLevel())
	assert.Equal(t, 1, ship.TrackLength())
}

func TestShip_MoveInsufficientFuelLeavesStateUnchanged(t *testing.T) {
	// Arrange
	ship := newTestShip()

	// Act: 10000 units of distance needs 10x the tank
	ok := ship.Move(shared.NewVector3(10000, 0, 0))

	// Assert
	require.False(t, ok)
	assert.Equal(t, shared.Vector3{}, ship.Position())
	assert.Equal(t, 1000.0, ship.FuelLevel())
	assert.Equal(t, 1, ship.TrackLength())
}

func TestShip_MoveExactFuelDrainsToEmpty(t *testing.T) {
	// Distance 1000 at rate 1.0 consumes the whole tank exactly
	ship := newTestShip()

	ok := ship.Move(shared.NewVector3(1000, 0, 0))

	require.True(t, ok)
	assert.Equal(t, 0.0, ship.FuelLevel())
}

func TestShip_MoveWhileLocked(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.LockNavigation(true))

	ok := ship.Move(shared.NewVector3(1, 0, 0))

	require.False(t, ok)
	assert.Equal(t, shared.Vector3{}, ship.Position())
	assert.Equal(t, 1000.0, ship.FuelLevel())
}

// SetPosition

func TestShip_SetPosition(t *testing.T) {
	ship := newTestShip()

	ok := ship.SetPosition(shared.NewVector3(100, 200, 300))

	require.True(t, ok)
	assert.Equal(t, shared.NewVector3(100, 200, 300), ship.Position())
	assert.Equal(t, 1000.0, ship.FuelLevel(), "teleporting costs no fuel")
	assert.Equal(t, 2, ship.TrackLength())
}

func TestShip_SetPositionWhileLocked(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.LockNavigation(true))

	ok := ship.SetPosition(shared.NewVector3(1, 1, 1))

	require.False(t, ok)
	assert.Equal(t, shared.Vector3{}, ship.Position())
}

// SetVelocity

func TestShip_SetVelocity(t *testing.T) {
	ship := newTestShip()

	ok := ship.SetVelocity(shared.NewVector3(50, -30, 20))

	require.True(t, ok)
	assert.Equal(t, shared.NewVector3(50, -30, 20), ship.Velocity())
	assert.True(t, ship.EngineActive())
}

func TestShip_SetVelocityRejectsComponentOverLimit(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.SetVelocity(shared.NewVector3(10, 10, 10)))

	// One axis over the limit rejects the whole vector
	ok := ship.SetVelocity(shared.NewVector3(999, 999, 999))
	require.False(t, ok)
	ok = ship.SetVelocity(shared.NewVector3(0, 100.01, 0))
	require.False(t, ok)
	ok = ship.SetVelocity(shared.NewVector3(0, 0, -100.01))
	require.False(t, ok)

	assert.Equal(t, shared.NewVector3(10, 10, 10), ship.Velocity())
}

func TestShip_SetVelocityAtExactLimit(t *testing.T) {
	ship := newTestShip()

	ok := ship.SetVelocity(shared.NewVector3(100, -100, 100))

	assert.True(t, ok)
}

func TestShip_SetVelocityWhileLocked(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.LockNavigation(true))

	ok := ship.SetVelocity(shared.NewVector3(1, 0, 0))

	require.False(t, ok)
	assert.Equal(t, shared.Vector3{}, ship.Velocity())
}

// Accelerate

func TestShip_Accelerate(t *testing.T) {
	// Arrange
	ship := newTestShip()

	// Act
	ok := ship.Accelerate(shared.NewVector3(1, 2, 3), 10)

	// Assert
	require.True(t, ok)
	assert.Equal(t, shared.NewVector3(10, 20, 30), ship.Velocity())
	assert.InDelta(t, 1000.0-math.Sqrt(14)*10*2.0, ship.FuelLevel(), 1e-9)
}

func TestShip_AccelerateAddsToCurrentVelocity(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.SetVelocity(shared.NewVector3(1, 1, 1)))

	ok := ship.Accelerate(shared.NewVector3(1, 2, 3), 10)

	require.True(t, ok)
	assert.Equal(t, shared.NewVector3(11, 21, 31), ship.Velocity())
}

func TestShip_AccelerateRejectsResultOverSpeedLimit(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.SetVelocity(shared.NewVector3(90, 0, 0)))
	before := ship.FuelLevel()

	ok := ship.Accelerate(shared.NewVector3(2, 0, 0), 10)

	require.False(t, ok)
	assert.Equal(t, shared.NewVector3(90, 0, 0), ship.Velocity())
	assert.Equal(t, before, ship.FuelLevel(), "rejected thrust burns nothing")
}

func TestShip_AccelerateRejectsNonPositiveDuration(t *testing.T) {
	ship := newTestShip()

	assert.False(t, ship.Accelerate(shared.NewVector3(1, 0, 0), 0))
	assert.False(t, ship.Accelerate(shared.NewVector3(1, 0, 0), -1))
}

func TestShip_AccelerateInsufficientFuel(t *testing.T) {
	// Arrange: drain the tank down to almost nothing
	ship := newTestShip()
	require.True(t, ship.Move(shared.NewVector3(999, 0, 0)))
	require.InDelta(t, 1.0, ship.FuelLevel(), 1e-9)

	// Act: |a|*dt*2 = 1*10*2 = 20 fuel needed
	ok := ship.Accelerate(shared.NewVector3(1, 0, 0), 10)

	// Assert
	require.False(t, ok)
	assert.Equal(t, shared.Vector3{}, ship.Velocity())
	assert.InDelta(t, 1.0, ship.FuelLevel(), 1e-9)
}

func TestShip_AccelerateWhileLocked(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.LockNavigation(true))

	assert.False(t, ship.Accelerate(shared.NewVector3(1, 0, 0), 1))
}

// Step

func TestShip_Step(t *testing.T) {
	// Arrange
	ship := newTestShip()
	require.True(t, ship.SetVelocity(shared.NewVector3(10, 0, 0)))

	// Act
	ok := ship.Step(5)

	// Assert
	require.True(t, ok)
	assert.Equal(t, shared.NewVector3(50, 0, 0), ship.Position())
	assert.InDelta(t, 950.0, ship.FuelLevel(), 1e-9)
	assert.Equal(t, 2, ship.TrackLength())
}

func TestShip_StepWithZeroVelocity(t *testing.T) {
	ship := newTestShip()

	ok := ship.Step(10)

	require.True(t, ok)
	assert.Equal(t, 1000.0, ship.FuelLevel())
	assert.Equal(t, 1, ship.TrackLength())
}

func TestShip_StepRejectsNonPositiveDuration(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.SetVelocity(shared.NewVector3(10, 0, 0)))

	assert.False(t, ship.Step(0))
	assert.False(t, ship.Step(-2))
	assert.Equal(t, shared.Vector3{}, ship.Position())
}

func TestShip_StepInsufficientFuelLeavesStateUnchanged(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.SetVelocity(shared.NewVector3(100, 0, 0)))

	// Would cover 10000 units; the tank holds 1000
	ok := ship.Step(100)

	require.False(t, ok)
	assert.Equal(t, shared.Vector3{}, ship.Position())
	assert.Equal(t, shared.NewVector3(100, 0, 0), ship.Velocity())
}

// Distance and heading

func TestShip_DistanceTo(t *testing.T) {
	ship := newTestShip()

	assert.InDelta(t, math.Sqrt(300), ship.DistanceTo(shared.NewVector3(10, 10, 10)), 1e-9)

	require.True(t, ship.SetPosition(shared.NewVector3(5, 5, 5)))
	assert.InDelta(t, math.Sqrt(75), ship.DistanceTo(shared.NewVector3(10, 10, 10)), 1e-9)
}

func TestShip_HeadingTo(t *testing.T) {
	ship := newTestShip()

	// Along +X: no azimuth, no elevation
	h := ship.HeadingTo(shared.NewVector3(10, 0, 0))
	assert.InDelta(t, 0.0, h.Azimuth, 1e-9)
	assert.InDelta(t, 0.0, h.Elevation, 1e-9)

	// Along +Y: quarter turn in the XY plane
	h = ship.HeadingTo(shared.NewVector3(0, 10, 0))
	assert.InDelta(t, math.Pi/2, h.Azimuth, 1e-9)
	assert.InDelta(t, 0.0, h.Elevation, 1e-9)

	// Straight up: elevation only
	h = ship.HeadingTo(shared.NewVector3(0, 0, 10))
	assert.InDelta(t, math.Pi/2, h.Elevation, 1e-9)
}

func TestShip_HeadingToSamePointIsZero(t *testing.T) {
	ship := newTestShip()

	h := ship.HeadingTo(shared.Vector3{})

	assert.Equal(t, navigation.Heading{}, h)
}

// NavigateToTarget

func TestShip_NavigateToTargetUsesMaxSpeedByDefault(t *testing.T) {
	// Arrange
	ship := newTestShip()

	// Act
	ok := ship.NavigateToTarget(shared.NewVector3(100, 0, 0), nil)

	// Assert
	require.True(t, ok)
	assert.InDelta(t, 100.0, ship.Velocity().X, 1e-9)
	assert.InDelta(t, 0.0, ship.Velocity().Y, 1e-9)
	assert.InDelta(t, 0.0, ship.Velocity().Z, 1e-9)
}

func TestShip_NavigateToTargetWithRequestedSpeed(t *testing.T) {
	ship := newTestShip()
	speed := 10.0

	ok := ship.NavigateToTarget(shared.NewVector3(0, 50, 0), &speed)

	require.True(t, ok)
	assert.InDelta(t, 10.0, ship.Velocity().Y, 1e-9)
	assert.InDelta(t, 10.0, ship.Velocity().Length(), 1e-9)
}

func TestShip_NavigateToTargetClampsSpeedToMax(t *testing.T) {
	ship := newTestShip()
	speed := 500.0

	ok := ship.NavigateToTarget(shared.NewVector3(10, 0, 0), &speed)

	require.True(t, ok)
	assert.InDelta(t, 100.0, ship.Velocity().Length(), 1e-9)
}

func TestShip_NavigateToTargetAtCurrentPositionStops(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.SetVelocity(shared.NewVector3(10, 10, 10)))

	ok := ship.NavigateToTarget(shared.Vector3{}, nil)

	require.True(t, ok)
	assert.Equal(t, shared.Vector3{}, ship.Velocity())
}

func TestShip_NavigateToTargetDiagonalKeepsDirection(t *testing.T) {
	// Arrange
	ship := newTestShip()
	target := shared.NewVector3(30, 40, 0)

	// Act
	ok := ship.NavigateToTarget(target, nil)

	// Assert: velocity is the unit direction scaled to max speed
	require.True(t, ok)
	v := ship.Velocity()
	assert.InDelta(t, 60.0, v.X, 1e-9)
	assert.InDelta(t, 80.0, v.Y, 1e-9)
	assert.InDelta(t, 100.0, v.Length(), 1e-9)
}

func TestShip_NavigateToTargetWhileLocked(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.LockNavigation(true))

	assert.False(t, ship.NavigateToTarget(shared.NewVector3(10, 0, 0), nil))
}

// CanReach and fuel estimates

func TestShip_CanReach(t *testing.T) {
	ship := newTestShip()

	assert.True(t, ship.CanReach(shared.NewVector3(1000, 0, 0)), "exactly the tank's worth")
	assert.False(t, ship.CanReach(shared.NewVector3(1000.1, 0, 0)))
}

func TestShip_CanReachAfterFuelDrain(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.Move(shared.NewVector3(600, 0, 0)))

	assert.True(t, ship.CanReach(shared.NewVector3(1000, 0, 0)), "400 units away, 400 fuel left")
	assert.False(t, ship.CanReach(shared.NewVector3(600, 401, 0)), "401 units away, 400 fuel left")
}

func TestShip_EstimateFuel(t *testing.T) {
	ship := newTestShip()

	assert.Equal(t, 250.0, ship.EstimateFuel(250))
	assert.Equal(t, 0.0, ship.EstimateFuel(0))
}

// Waypoints

func TestShip_WaypointLifecycle(t *testing.T) {
	// Arrange
	ship := newTestShip()
	first := shared.NewVector3(10, 0, 0)
	second := shared.NewVector3(20, 0, 0)

	// Act
	require.True(t, ship.AddWaypoint(first))
	require.True(t, ship.AddWaypoint(second))

	// Assert
	assert.Equal(t, 2, ship.WaypointsRemaining())

	wp, ok := ship.NextWaypoint()
	require.True(t, ok)
	assert.Equal(t, first, wp)

	require.True(t, ship.AdvanceWaypoint())
	wp, ok = ship.NextWaypoint()
	require.True(t, ok)
	assert.Equal(t, second, wp)
	assert.Equal(t, 1, ship.WaypointsRemaining())

	require.True(t, ship.AdvanceWaypoint())
	_, ok = ship.NextWaypoint()
	assert.False(t, ok)
	assert.True(t, ship.RouteComplete())
}

func TestShip_AdvanceWaypointPastEndFails(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.AddWaypoint(shared.NewVector3(1, 0, 0)))
	require.True(t, ship.AdvanceWaypoint())

	// Cursor is at the end; it never moves past it
	assert.False(t, ship.AdvanceWaypoint())
	assert.Equal(t, 0, ship.WaypointsRemaining())
}

func TestShip_ClearWaypointsResetsCursor(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.AddWaypoint(shared.NewVector3(1, 0, 0)))
	require.True(t, ship.AddWaypoint(shared.NewVector3(2, 0, 0)))
	require.True(t, ship.AdvanceWaypoint())

	require.True(t, ship.ClearWaypoints())

	assert.Equal(t, 0, ship.WaypointsRemaining())
	_, ok := ship.NextWaypoint()
	assert.False(t, ok)

	// A fresh route starts from the front again
	require.True(t, ship.AddWaypoint(shared.NewVector3(3, 0, 0)))
	wp, ok := ship.NextWaypoint()
	require.True(t, ok)
	assert.Equal(t, shared.NewVector3(3, 0, 0), wp)
}

func TestShip_WaypointMutationsWhileLocked(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.AddWaypoint(shared.NewVector3(1, 0, 0)))
	require.True(t, ship.LockNavigation(true))

	assert.False(t, ship.AddWaypoint(shared.NewVector3(2, 0, 0)))
	assert.False(t, ship.ClearWaypoints())
	assert.False(t, ship.AdvanceWaypoint())

	// Reading the route is still allowed
	wp, ok := ship.NextWaypoint()
	assert.True(t, ok)
	assert.Equal(t, shared.NewVector3(1, 0, 0), wp)
}

// FollowRoute

func TestShip_FollowRouteSteersTowardWaypoint(t *testing.T) {
	// Arrange
	ship := newTestShip()
	require.True(t, ship.AddWaypoint(shared.NewVector3(100, 0, 0)))

	// Act
	ok := ship.FollowRoute(navigation.DefaultArrivalThreshold)

	// Assert: full speed along +X, waypoint not yet reached
	require.True(t, ok)
	assert.InDelta(t, 100.0, ship.Velocity().X, 1e-9)
	assert.Equal(t, 1, ship.WaypointsRemaining())
}

func TestShip_FollowRouteAdvancesWithinThreshold(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.AddWaypoint(shared.NewVector3(3, 0, 0)))

	ok := ship.FollowRoute(5.0)

	require.True(t, ok)
	assert.Equal(t, 0, ship.WaypointsRemaining())
}

func TestShip_FollowRouteWithEmptyRouteFails(t *testing.T) {
	ship := newTestShip()

	assert.False(t, ship.FollowRoute(navigation.DefaultArrivalThreshold))
}

func TestShip_FollowRouteCompletesOverTicks(t *testing.T) {
	// Arrange: two waypoints along +X
	ship := newTestShip()
	require.True(t, ship.AddWaypoint(shared.NewVector3(50, 0, 0)))
	require.True(t, ship.AddWaypoint(shared.NewVector3(120, 0, 0)))

	// Act: alternate steering and time steps
	for tick := 0; tick < 20 && !ship.RouteComplete(); tick++ {
		ship.FollowRoute(navigation.DefaultArrivalThreshold)
		require.True(t, ship.Step(0.5))
	}

	// Assert
	assert.True(t, ship.RouteComplete())
	assert.InDelta(t, 120.0, ship.Position().X, navigation.DefaultArrivalThreshold)
}

// Refuel

func TestShip_Refuel(t *testing.T) {
	// Arrange: burn ~500 fuel
	ship := newTestShip()
	require.True(t, ship.Move(shared.NewVector3(500, 0, 0)))
	require.InDelta(t, 500.0, ship.FuelLevel(), 1e-9)

	// Act
	added := ship.Refuel(200)

	// Assert
	assert.InDelta(t, 200.0, added, 1e-9)
	assert.InDelta(t, 700.0, ship.FuelLevel(), 1e-9)
}

func TestShip_RefuelSaturatesAtCapacity(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.Move(shared.NewVector3(100, 0, 0)))

	added := ship.Refuel(5000)

	assert.InDelta(t, 100.0, added, 1e-9)
	assert.Equal(t, 1000.0, ship.FuelLevel())
}

func TestShip_RefuelRejectsNonPositiveAmounts(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.Move(shared.NewVector3(10, 0, 0)))
	before := ship.FuelLevel()

	assert.Equal(t, 0.0, ship.Refuel(0))
	assert.Equal(t, 0.0, ship.Refuel(-100))
	assert.Equal(t, before, ship.FuelLevel())
}

func TestShip_RefuelWorksWhileLocked(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.Move(shared.NewVector3(100, 0, 0)))
	require.True(t, ship.LockNavigation(true))

	added := ship.Refuel(50)

	assert.InDelta(t, 50.0, added, 1e-9)
}

// Mode and lock

func TestShip_SetMode(t *testing.T) {
	ship := newTestShip()

	require.True(t, ship.SetMode(navigation.ModeAutopilot))
	assert.Equal(t, navigation.ModeAutopilot, ship.Mode())

	require.True(t, ship.SetMode(navigation.ModeManual))
	assert.Equal(t, navigation.ModeManual, ship.Mode())
}

func TestShip_SetModeWhileLockedOnlyAllowsEmergency(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.LockNavigation(true))

	assert.False(t, ship.SetMode(navigation.ModeAutopilot))
	assert.Equal(t, navigation.ModeManual, ship.Mode())

	assert.True(t, ship.SetMode(navigation.ModeEmergency))
	assert.Equal(t, navigation.ModeEmergency, ship.Mode())
}

func TestShip_SetModeRejectsUnknownMode(t *testing.T) {
	ship := newTestShip()

	assert.False(t, ship.SetMode(navigation.Mode(42)))
	assert.Equal(t, navigation.ModeManual, ship.Mode())
}

func TestShip_LockRequiresManualMode(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.SetMode(navigation.ModeAutopilot))

	assert.False(t, ship.LockNavigation(true))
	assert.False(t, ship.Locked())
}

func TestShip_UnlockAlwaysSucceeds(t *testing.T) {
	// Lock in manual, switch to emergency, then unlock
	ship := newTestShip()
	require.True(t, ship.LockNavigation(true))
	require.True(t, ship.SetMode(navigation.ModeEmergency))

	assert.True(t, ship.LockNavigation(false))
	assert.False(t, ship.Locked())

	// Unlocking an unlocked ship is also fine
	assert.True(t, ship.LockNavigation(false))
}

// EmergencyStop

func TestShip_EmergencyStop(t *testing.T) {
	// Arrange: moving, locked ship
	ship := newTestShip()
	require.True(t, ship.SetVelocity(shared.NewVector3(50, 50, 50)))
	require.True(t, ship.LockNavigation(true))

	// Act
	ok := ship.EmergencyStop()

	// Assert
	require.True(t, ok)
	assert.Equal(t, shared.Vector3{}, ship.Velocity())
	assert.Equal(t, navigation.ModeEmergency, ship.Mode())
	assert.False(t, ship.Locked())
	assert.False(t, ship.EngineActive())
}

func TestShip_EmergencyStopKeepsWaypointsAndTrack(t *testing.T) {
	ship := newTestShip()
	require.True(t, ship.AddWaypoint(shared.NewVector3(10, 0, 0)))
	require.True(t, ship.Move(shared.NewVector3(1, 1, 1)))

	require.True(t, ship.EmergencyStop())

	assert.Equal(t, 1, ship.WaypointsRemaining())
	assert.Equal(t, 2, ship.TrackLength())
}

// Track

func TestShip_TrackEvictsOldestPastLimit(t *testing.T) {
	// Arrange: tiny history for the test
	spec := navigation.DefaultShipSpec()
	spec.HistoryLimit = 5
	ship := navigation.NewShip(spec)

	// Act: 10 recorded moves on top of the seed entry
	for i := 1; i <= 10; i++ {
		require.True(t, ship.SetPosition(shared.NewVector3(float64(i), 0, 0)))
	}

	// Assert: capped, oldest evicted, newest kept
	track := ship.Track()
	require.Len(t, track, 5)
	assert.Equal(t, shared.NewVector3(6, 0, 0), track[0])
	assert.Equal(t, shared.NewVector3(10, 0, 0), track[4])
}

func TestShip_TrackIsACopy(t *testing.T) {
	ship := newTestShip()

	track := ship.Track()
	track[0] = shared.NewVector3(99, 99, 99)

	assert.Equal(t, shared.Vector3{}, ship.Track()[0])
}

// Status

func TestShip_Status(t *testing.T) {
	// Arrange
	ship := newTestShip()
	require.True(t, ship.Move(shared.NewVector3(300, 0, 0)))
	require.True(t, ship.SetVelocity(shared.NewVector3(10, 0, 0)))
	require.True(t, ship.AddWaypoint(shared.NewVector3(500, 0, 0)))

	// Act
	status := ship.Status()

	// Assert
	assert.Equal(t, shared.NewVector3(300, 0, 0), status.Position)
	assert.Equal(t, shared.NewVector3(10, 0, 0), status.Velocity)
	assert.InDelta(t, 700.0, status.FuelLevel, 1e-9)
	assert.Equal(t, 1000.0, status.FuelCapacity)
	assert.InDelta(t, 70.0, status.FuelPercentage, 1e-9)
	assert.Equal(t, "MANUAL", status.Mode)
	assert.False(t, status.Locked)
	assert.True(t, status.EngineActive)
	assert.Equal(t, 1, status.WaypointsRemaining)
	assert.Equal(t, 2, status.TrackLength)
}
