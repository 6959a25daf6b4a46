package navigation

import (
	"fmt"

	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// RouteLeg describes one hop of a flight plan
type RouteLeg struct {
	From           shared.Vector3 `json:"from"`
	To             shared.Vector3 `json:"to"`
	Distance       float64        `json:"distance"`
	FuelRequired   float64        `json:"fuel_required"`
	CumulativeFuel float64        `json:"cumulative_fuel"`
	Reachable      bool           `json:"reachable"`
}

func (l RouteLeg) String() string {
	marker := ""
	if !l.Reachable {
		marker = " [OUT OF RANGE]"
	}
	return fmt.Sprintf("%s → %s (%.1fu, %.1f fuel)%s", l.From, l.To, l.Distance, l.FuelRequired, marker)
}

// RoutePlan is an advisory distance and fuel breakdown over the ship's
// remaining waypoints, judged against fuel on board when the plan was made.
type RoutePlan struct {
	Legs          []RouteLeg `json:"legs"`
	TotalDistance float64    `json:"total_distance"`
	TotalFuel     float64    `json:"total_fuel"`
	FuelAvailable float64    `json:"fuel_available"`
	Reachable     bool       `json:"reachable"`
}

// RoutePlanner provides stateless flight plan calculations over a ship's
// waypoint route. Plans are advisory: nothing is reserved and the ship is
// never mutated, so fuel spent after planning invalidates the verdict.
type RoutePlanner struct{}

// NewRoutePlanner creates a new planner instance
func NewRoutePlanner() *RoutePlanner {
	return &RoutePlanner{}
}

// Plan walks the remaining waypoints from the ship's current position,
// accumulating distance and fuel per leg
func (p *RoutePlanner) Plan(ship *Ship) *RoutePlan {
	plan := &RoutePlan{
		Legs:          []RouteLeg{},
		FuelAvailable: ship.FuelLevel(),
		Reachable:     true,
	}

	from := ship.Position()
	cumulative := 0.0
	for _, to := range ship.RemainingWaypoints() {
		distance := from.DistanceTo(to)
		fuel := ship.EstimateFuel(distance)
		cumulative += fuel

		plan.Legs = append(plan.Legs, RouteLeg{
			From:           from,
			To:             to,
			Distance:       distance,
			FuelRequired:   fuel,
			CumulativeFuel: cumulative,
			Reachable:      cumulative <= plan.FuelAvailable,
		})
		plan.TotalDistance += distance
		plan.TotalFuel += fuel
		from = to
	}

	plan.Reachable = plan.TotalFuel <= plan.FuelAvailable
	return plan
}
