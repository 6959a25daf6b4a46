package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// ClearWaypointsHandler - Handles route reset commands
type ClearWaypointsHandler struct {
	ship *navigation.Ship
}

// NewClearWaypointsHandler creates a new clear waypoints handler
func NewClearWaypointsHandler(ship *navigation.Ship) *ClearWaypointsHandler {
	return &ClearWaypointsHandler{ship: ship}
}

// Handle executes the clear waypoints command
func (h *ClearWaypointsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*types.ClearWaypointsCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !h.ship.ClearWaypoints() {
		return nil, shared.NewNavigationLockedError("clear_waypoints")
	}

	return &types.ClearWaypointsResponse{Status: "waypoints_cleared"}, nil
}
