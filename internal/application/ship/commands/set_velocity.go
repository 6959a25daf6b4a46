package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// SetVelocityHandler - Handles velocity replacement commands
type SetVelocityHandler struct {
	ship *navigation.Ship
}

// NewSetVelocityHandler creates a new set velocity handler
func NewSetVelocityHandler(ship *navigation.Ship) *SetVelocityHandler {
	return &SetVelocityHandler{ship: ship}
}

// Handle executes the set velocity command
func (h *SetVelocityHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.SetVelocityCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !h.ship.SetVelocity(cmd.Velocity) {
		return nil, velocityRejection(h.ship, cmd.Velocity, "set_velocity")
	}

	return &types.SetVelocityResponse{
		Status:   "velocity_set",
		Velocity: h.ship.Velocity(),
	}, nil
}
