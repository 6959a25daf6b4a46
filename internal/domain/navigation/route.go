package navigation

import (
	"fmt"

	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// Route holds an ordered list of waypoints and a forward-only cursor
// marking the next one to visit.
//
// Invariants:
// - The cursor never moves backwards and never exceeds the waypoint count
// - Visited waypoints are retained until the route is cleared
type Route struct {
	waypoints    []shared.Vector3
	currentIndex int
}

// NewRoute creates an empty route
func NewRoute() *Route {
	return &Route{waypoints: []shared.Vector3{}}
}

// Append adds a waypoint to the end of the route
func (r *Route) Append(wp shared.Vector3) {
	r.waypoints = append(r.waypoints, wp)
}

// Clear removes all waypoints and resets the cursor
func (r *Route) Clear() {
	r.waypoints = r.waypoints[:0]
	r.currentIndex = 0
}

// Next returns the waypoint under the cursor.
// ok is false once the route is exhausted.
func (r *Route) Next() (shared.Vector3, bool) {
	if r.currentIndex >= len(r.waypoints) {
		return shared.Vector3{}, false
	}
	return r.waypoints[r.currentIndex], true
}

// Advance moves the cursor past the current waypoint.
// Returns false when no waypoints remain.
func (r *Route) Advance() bool {
	if r.currentIndex >= len(r.waypoints) {
		return false
	}
	r.currentIndex++
	return true
}

// Len returns the number of waypoints added since the last clear
func (r *Route) Len() int {
	return len(r.waypoints)
}

// Remaining counts waypoints not yet visited
func (r *Route) Remaining() int {
	return len(r.waypoints) - r.currentIndex
}

// IsComplete reports whether every waypoint has been visited
func (r *Route) IsComplete() bool {
	return r.currentIndex >= len(r.waypoints)
}

// CurrentIndex returns the cursor position
func (r *Route) CurrentIndex() int {
	return r.currentIndex
}

// Waypoints returns a copy of all waypoints in order
func (r *Route) Waypoints() []shared.Vector3 {
	waypoints := make([]shared.Vector3, len(r.waypoints))
	copy(waypoints, r.waypoints)
	return waypoints
}

// RemainingWaypoints returns a copy of the waypoints still ahead of the cursor
func (r *Route) RemainingWaypoints() []shared.Vector3 {
	if r.currentIndex >= len(r.waypoints) {
		return []shared.Vector3{}
	}
	remaining := make([]shared.Vector3, len(r.waypoints)-r.currentIndex)
	copy(remaining, r.waypoints[r.currentIndex:])
	return remaining
}

func (r *Route) String() string {
	return fmt.Sprintf("Route(%d/%d waypoints)", r.currentIndex, len(r.waypoints))
}
