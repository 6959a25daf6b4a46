package types

import (
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// Ship query types

// GetStatusQuery - Query for the full navigation snapshot
type GetStatusQuery struct{}

// GetStatusResponse - Response holding the snapshot
type GetStatusResponse struct {
	Status navigation.Status
}

// GetHeadingQuery - Query for heading and distance toward a target
type GetHeadingQuery struct {
	Target shared.Vector3
}

// GetHeadingResponse - Response from get heading query
type GetHeadingResponse struct {
	Heading  navigation.Heading
	Distance float64
}

// CanReachQuery - Query whether fuel on board covers the trip to a target
type CanReachQuery struct {
	Target shared.Vector3
}

// CanReachResponse - Response from can reach query. Advisory only;
// nothing is reserved.
type CanReachResponse struct {
	Reachable     bool
	Distance      float64
	FuelRequired  float64
	FuelAvailable float64
	FuelDeficit   float64 // 0 when reachable
}

// PlanRouteQuery - Query for a flight plan over the remaining waypoints
type PlanRouteQuery struct{}

// PlanRouteResponse - Response holding the advisory plan
type PlanRouteResponse struct {
	Plan *navigation.RoutePlan
}

// GetTrackQuery - Query for the recorded position history
type GetTrackQuery struct{}

// GetTrackResponse - Response from get track query, oldest position first
type GetTrackResponse struct {
	Points []shared.Vector3
}
