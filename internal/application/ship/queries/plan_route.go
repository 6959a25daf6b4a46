package queries

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// PlanRouteHandler - Handles flight plan queries over the remaining waypoints
type PlanRouteHandler struct {
	ship    *navigation.Ship
	planner *navigation.RoutePlanner
}

// NewPlanRouteHandler creates a new plan route handler
func NewPlanRouteHandler(ship *navigation.Ship) *PlanRouteHandler {
	return &PlanRouteHandler{
		ship:    ship,
		planner: navigation.NewRoutePlanner(),
	}
}

// Handle executes the plan route query
func (h *PlanRouteHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*types.PlanRouteQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	return &types.PlanRouteResponse{Plan: h.planner.Plan(h.ship)}, nil
}
