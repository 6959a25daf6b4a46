package queries

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// CanReachHandler - Handles fuel range queries
type CanReachHandler struct {
	ship *navigation.Ship
}

// NewCanReachHandler creates a new can reach handler
func NewCanReachHandler(ship *navigation.Ship) *CanReachHandler {
	return &CanReachHandler{ship: ship}
}

// Handle executes the can reach query
func (h *CanReachHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*types.CanReachQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	distance := h.ship.DistanceTo(query.Target)
	required := h.ship.EstimateFuel(distance)
	available := h.ship.FuelLevel()

	deficit := 0.0
	if required > available {
		deficit = required - available
	}

	return &types.CanReachResponse{
		Reachable:     h.ship.CanReach(query.Target),
		Distance:      distance,
		FuelRequired:  required,
		FuelAvailable: available,
		FuelDeficit:   deficit,
	}, nil
}
