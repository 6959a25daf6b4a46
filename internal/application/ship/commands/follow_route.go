package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// FollowRouteHandler - Handles one control tick of waypoint route following
type FollowRouteHandler struct {
	ship *navigation.Ship
}

// NewFollowRouteHandler creates a new follow route handler
func NewFollowRouteHandler(ship *navigation.Ship) *FollowRouteHandler {
	return &FollowRouteHandler{ship: ship}
}

// Handle executes the follow route command
func (h *FollowRouteHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.FollowRouteCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	threshold := cmd.Threshold
	if threshold <= 0 {
		threshold = navigation.DefaultArrivalThreshold
	}

	remainingBefore := h.ship.WaypointsRemaining()
	if !h.ship.FollowRoute(threshold) {
		if h.ship.RouteComplete() {
			return nil, shared.NewRouteExhaustedError()
		}
		return nil, shared.NewNavigationLockedError("follow_route")
	}

	status := "steering"
	if h.ship.WaypointsRemaining() < remainingBefore {
		status = "waypoint_reached"
		if h.ship.RouteComplete() {
			status = "route_complete"
		}
	}

	return &types.FollowRouteResponse{
		Status:             status,
		Velocity:           h.ship.Velocity(),
		WaypointsRemaining: h.ship.WaypointsRemaining(),
		RouteComplete:      h.ship.RouteComplete(),
	}, nil
}
