package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// AddWaypointHandler - Handles waypoint append commands
type AddWaypointHandler struct {
	ship *navigation.Ship
}

// NewAddWaypointHandler creates a new add waypoint handler
func NewAddWaypointHandler(ship *navigation.Ship) *AddWaypointHandler {
	return &AddWaypointHandler{ship: ship}
}

// Handle executes the add waypoint command
func (h *AddWaypointHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.AddWaypointCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !h.ship.AddWaypoint(cmd.Waypoint) {
		return nil, shared.NewNavigationLockedError("add_waypoint")
	}

	return &types.AddWaypointResponse{
		Status:             "waypoint_added",
		WaypointsRemaining: h.ship.WaypointsRemaining(),
	}, nil
}
