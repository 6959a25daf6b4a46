package navigation

import "github.com/orbitalworks/shipnav/internal/domain/shared"

// Status is a point-in-time snapshot of the ship's navigation state,
// detached from the entity and safe to hand to any caller.
type Status struct {
	Position           shared.Vector3 `json:"position"`
	Velocity           shared.Vector3 `json:"velocity"`
	FuelLevel          float64        `json:"fuel_level"`
	FuelCapacity       float64        `json:"fuel_capacity"`
	FuelPercentage     float64        `json:"fuel_percentage"`
	Mode               string         `json:"mode"`
	Locked             bool           `json:"locked"`
	EngineActive       bool           `json:"engine_active"`
	WaypointsRemaining int            `json:"waypoints_remaining"`
	TrackLength        int            `json:"track_length"`
}

// Status captures the current snapshot
func (s *Ship) Status() Status {
	return Status{
		Position:           s.position,
		Velocity:           s.velocity,
		FuelLevel:          s.fuel.Current,
		FuelCapacity:       s.fuel.Capacity,
		FuelPercentage:     s.fuel.Percentage(),
		Mode:               s.mode.Name(),
		Locked:             s.locked,
		EngineActive:       s.EngineActive(),
		WaypointsRemaining: s.route.Remaining(),
		TrackLength:        s.track.Len(),
	}
}
