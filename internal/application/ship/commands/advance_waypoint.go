package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// AdvanceWaypointHandler - Handles route cursor advance commands
type AdvanceWaypointHandler struct {
	ship *navigation.Ship
}

// NewAdvanceWaypointHandler creates a new advance waypoint handler
func NewAdvanceWaypointHandler(ship *navigation.Ship) *AdvanceWaypointHandler {
	return &AdvanceWaypointHandler{ship: ship}
}

// Handle executes the advance waypoint command
func (h *AdvanceWaypointHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*types.AdvanceWaypointCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !h.ship.AdvanceWaypoint() {
		if h.ship.Locked() {
			return nil, shared.NewNavigationLockedError("advance_waypoint")
		}
		return nil, shared.NewRouteExhaustedError()
	}

	return &types.AdvanceWaypointResponse{
		Status:             "waypoint_advanced",
		WaypointsRemaining: h.ship.WaypointsRemaining(),
	}, nil
}
