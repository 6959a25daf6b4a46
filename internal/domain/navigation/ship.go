package navigation

import (
	"fmt"
	"math"

	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// Default ship characteristics
const (
	DefaultFuelCapacity = 1000.0
	DefaultFuelRate     = 1.0 // fuel per unit distance
	DefaultMaxSpeed     = 100.0
	DefaultHistoryLimit = 100

	// DefaultArrivalThreshold is the distance at which FollowRoute treats
	// the current waypoint as reached and advances past it.
	DefaultArrivalThreshold = 5.0
)

// accelerationFuelFactor scales thrust fuel cost: burning the engines
// costs twice what coasting the same magnitude would.
const accelerationFuelFactor = 2.0

// ShipSpec describes the fixed characteristics of a ship. Zero-valued
// fields fall back to the defaults.
type ShipSpec struct {
	FuelCapacity float64
	FuelRate     float64
	MaxSpeed     float64
	HistoryLimit int
}

// DefaultShipSpec returns the standard ship characteristics
func DefaultShipSpec() ShipSpec {
	return ShipSpec{
		FuelCapacity: DefaultFuelCapacity,
		FuelRate:     DefaultFuelRate,
		MaxSpeed:     DefaultMaxSpeed,
		HistoryLimit: DefaultHistoryLimit,
	}
}

func (s ShipSpec) normalized() ShipSpec {
	if s.FuelCapacity <= 0 {
		s.FuelCapacity = DefaultFuelCapacity
	}
	if s.FuelRate <= 0 {
		s.FuelRate = DefaultFuelRate
	}
	if s.MaxSpeed <= 0 {
		s.MaxSpeed = DefaultMaxSpeed
	}
	if s.HistoryLimit <= 0 {
		s.HistoryLimit = DefaultHistoryLimit
	}
	return s
}

// Ship entity - a single spacecraft's complete navigation state
//
// Invariants:
// - Fuel stays within [0, capacity]
// - Each velocity component stays within [-MaxSpeed, MaxSpeed]
// - A lock can only be engaged in manual mode; unlocking always succeeds
// - A rejected operation leaves all observable state unchanged
//
// Failed operations report by returning false rather than an error; the
// caller inspects the ship if it needs the reason. The entity is not safe
// for concurrent use, callers serialize access.
type Ship struct {
	spec     ShipSpec
	position shared.Vector3
	velocity shared.Vector3
	fuel     shared.Fuel
	mode     Mode
	locked   bool
	route    *Route
	track    *Track
}

// NewShip creates a ship at the origin with a full tank, manual mode and
// an empty route
func NewShip(spec ShipSpec) *Ship {
	return NewShipAt(spec, shared.Vector3{})
}

// NewShipAt creates a ship at the given position. The track starts seeded
// with the initial position.
func NewShipAt(spec ShipSpec, position shared.Vector3) *Ship {
	spec = spec.normalized()
	ship := &Ship{
		spec:     spec,
		position: position,
		fuel:     shared.FullTank(spec.FuelCapacity),
		mode:     ModeManual,
		route:    NewRoute(),
		track:    NewTrack(spec.HistoryLimit),
	}
	ship.track.Record(position)
	return ship
}

// Getters

func (s *Ship) Spec() ShipSpec {
	return s.spec
}

func (s *Ship) Position() shared.Vector3 {
	return s.position
}

func (s *Ship) Velocity() shared.Vector3 {
	return s.velocity
}

func (s *Ship) Fuel() shared.Fuel {
	return s.fuel
}

func (s *Ship) FuelLevel() float64 {
	return s.fuel.Current
}

func (s *Ship) FuelPercentage() float64 {
	return s.fuel.Percentage()
}

func (s *Ship) MaxSpeed() float64 {
	return s.spec.MaxSpeed
}

func (s *Ship) Mode() Mode {
	return s.mode
}

func (s *Ship) Locked() bool {
	return s.locked
}

// EngineActive reports whether the ship is under way (nonzero velocity)
func (s *Ship) EngineActive() bool {
	return !s.velocity.IsZero()
}

// Movement

// SetPosition teleports the ship, recording the new position in the track.
// Costs no fuel. Returns false while navigation is locked.
func (s *Ship) SetPosition(p shared.Vector3) bool {
	if s.locked {
		return false
	}
	s.position = p
	s.track.Record(p)
	return true
}

// Move translates the ship by delta, consuming fuel proportional to the
// distance covered. A zero delta succeeds without burning fuel or touching
// the track. Position, fuel and track update together or not at all.
func (s *Ship) Move(delta shared.Vector3) bool {
	if s.locked {
		return false
	}

	distance := delta.Length()
	if distance == 0 {
		return true
	}

	required := distance * s.spec.FuelRate
	if !s.fuel.CanCover(required) {
		return false
	}

	s.position = s.position.Add(delta)
	s.fuel = s.fuel.Consume(required)
	s.track.Record(s.position)
	return true
}

// SetVelocity replaces the velocity vector. The whole vector is rejected
// if any component exceeds the ship's speed limit; nothing is clamped.
func (s *Ship) SetVelocity(v shared.Vector3) bool {
	if s.locked {
		return false
	}
	if s.exceedsSpeedLimit(v) {
		return false
	}
	s.velocity = v
	return true
}

// Accelerate applies thrust for the given duration, updating velocity and
// burning fuel at the acceleration rate. Velocity and fuel change together
// or not at all.
func (s *Ship) Accelerate(accel shared.Vector3, dt float64) bool {
	if s.locked || dt <= 0 {
		return false
	}

	next := s.velocity.Add(accel.Scale(dt))
	if s.exceedsSpeedLimit(next) {
		return false
	}

	required := accel.Length() * dt * accelerationFuelFactor
	if !s.fuel.CanCover(required) {
		return false
	}

	s.velocity = next
	s.fuel = s.fuel.Consume(required)
	return true
}

// Step advances the position by velocity over the given duration.
// Fuel accounting and history follow Move.
func (s *Ship) Step(dt float64) bool {
	if s.locked || dt <= 0 {
		return false
	}
	return s.Move(s.velocity.Scale(dt))
}

func (s *Ship) exceedsSpeedLimit(v shared.Vector3) bool {
	limit := s.spec.MaxSpeed
	return math.Abs(v.X) > limit || math.Abs(v.Y) > limit || math.Abs(v.Z) > limit
}

// Navigation queries

// DistanceTo returns the Euclidean distance from the ship to target
func (s *Ship) DistanceTo(target shared.Vector3) float64 {
	return s.position.DistanceTo(target)
}

// HeadingTo returns the azimuth and elevation from the ship toward target
func (s *Ship) HeadingTo(target shared.Vector3) Heading {
	return HeadingBetween(s.position, target)
}

// EstimateFuel returns the fuel required to cover the given distance
func (s *Ship) EstimateFuel(distance float64) float64 {
	return distance * s.spec.FuelRate
}

// EstimateThrustFuel returns the fuel a burn of the given acceleration and
// duration would cost
func (s *Ship) EstimateThrustFuel(accel shared.Vector3, dt float64) float64 {
	return accel.Length() * dt * accelerationFuelFactor
}

// CanReach reports whether fuel on board covers the distance to target.
// Purely advisory: nothing is reserved, so a later move may still fail.
func (s *Ship) CanReach(target shared.Vector3) bool {
	return s.fuel.CanCover(s.EstimateFuel(s.DistanceTo(target)))
}

// NavigateToTarget points the velocity vector at target. A nil speed means
// the ship's maximum; a requested speed is capped at the maximum either way.
// Already at the target, the ship comes to rest.
func (s *Ship) NavigateToTarget(target shared.Vector3, speed *float64) bool {
	if s.locked {
		return false
	}

	distance := s.position.DistanceTo(target)
	if distance == 0 {
		return s.SetVelocity(shared.Vector3{})
	}

	requested := s.spec.MaxSpeed
	if speed != nil {
		requested = math.Min(*speed, s.spec.MaxSpeed)
	}

	direction := target.Sub(s.position).Normalize()
	return s.SetVelocity(direction.Scale(requested))
}

// Waypoint route

// AddWaypoint appends a waypoint to the route
func (s *Ship) AddWaypoint(wp shared.Vector3) bool {
	if s.locked {
		return false
	}
	s.route.Append(wp)
	return true
}

// ClearWaypoints empties the route and resets its cursor
func (s *Ship) ClearWaypoints() bool {
	if s.locked {
		return false
	}
	s.route.Clear()
	return true
}

// NextWaypoint returns the waypoint the ship is currently steering for.
// ok is false once the route is exhausted.
func (s *Ship) NextWaypoint() (shared.Vector3, bool) {
	return s.route.Next()
}

// AdvanceWaypoint moves the route cursor past the current waypoint
func (s *Ship) AdvanceWaypoint() bool {
	if s.locked {
		return false
	}
	return s.route.Advance()
}

// WaypointsRemaining counts waypoints not yet visited
func (s *Ship) WaypointsRemaining() int {
	return s.route.Remaining()
}

// Waypoints returns a copy of the full route
func (s *Ship) Waypoints() []shared.Vector3 {
	return s.route.Waypoints()
}

// RemainingWaypoints returns a copy of the waypoints still ahead
func (s *Ship) RemainingWaypoints() []shared.Vector3 {
	return s.route.RemainingWaypoints()
}

// RouteComplete reports whether every waypoint has been visited
func (s *Ship) RouteComplete() bool {
	return s.route.IsComplete()
}

// FollowRoute steers toward the current waypoint at full speed, advancing
// past it once within threshold. Call once per control tick to fly the
// route. Returns false when the route is exhausted or navigation is locked.
func (s *Ship) FollowRoute(threshold float64) bool {
	wp, ok := s.route.Next()
	if !ok {
		return false
	}

	if s.DistanceTo(wp) <= threshold {
		return s.AdvanceWaypoint()
	}

	return s.NavigateToTarget(wp, nil)
}

// Fuel

// Refuel adds fuel up to capacity and returns the amount actually taken
// on. Amounts of zero or less add nothing. Refueling works even while
// navigation is locked.
func (s *Ship) Refuel(amount float64) float64 {
	fuel, added := s.fuel.Add(amount)
	s.fuel = fuel
	return added
}

// Mode and lock

// SetMode switches the navigation mode. While locked only the switch to
// emergency mode is allowed.
func (s *Ship) SetMode(mode Mode) bool {
	if !mode.IsValid() {
		return false
	}
	if s.locked && mode != ModeEmergency {
		return false
	}
	s.mode = mode
	return true
}

// LockNavigation engages or releases the control lock. Unlocking always
// succeeds; locking requires manual mode.
func (s *Ship) LockNavigation(locked bool) bool {
	if locked && s.mode != ModeManual {
		return false
	}
	s.locked = locked
	return true
}

// EmergencyStop zeroes velocity, enters emergency mode and releases any
// lock. Never fails. Waypoints and history are left intact.
func (s *Ship) EmergencyStop() bool {
	s.velocity = shared.Vector3{}
	s.mode = ModeEmergency
	s.locked = false
	return true
}

// History

// Track returns the recorded position history, oldest first
func (s *Ship) Track() []shared.Vector3 {
	return s.track.Points()
}

// TrackLength returns the number of recorded positions
func (s *Ship) TrackLength() int {
	return s.track.Len()
}

func (s *Ship) String() string {
	return fmt.Sprintf("Ship(pos=%s, %s, mode=%s)", s.position, s.fuel, s.mode)
}
