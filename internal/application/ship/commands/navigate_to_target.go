package commands

import (
	"context"
	"fmt"
	"math"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// NavigateToTargetHandler - Handles commands that point the velocity vector
// at a target
type NavigateToTargetHandler struct {
	ship *navigation.Ship
}

// NewNavigateToTargetHandler creates a new navigate to target handler
func NewNavigateToTargetHandler(ship *navigation.Ship) *NavigateToTargetHandler {
	return &NavigateToTargetHandler{ship: ship}
}

// Handle executes the navigate to target command
func (h *NavigateToTargetHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.NavigateToTargetCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	distance := h.ship.DistanceTo(cmd.Target)
	if !h.ship.NavigateToTarget(cmd.Target, cmd.Speed) {
		return nil, h.rejection(cmd)
	}

	status := "navigating"
	if distance == 0 {
		status = "arrived"
	}

	return &types.NavigateToTargetResponse{
		Status:   status,
		Velocity: h.ship.Velocity(),
		Heading:  h.ship.HeadingTo(cmd.Target),
		Distance: distance,
	}, nil
}

// rejection reconstructs the failed velocity the entity computed. With the
// speed capped at the ship's maximum this only trips for negative requests
// below -max.
func (h *NavigateToTargetHandler) rejection(cmd *types.NavigateToTargetCommand) error {
	if h.ship.Locked() {
		return shared.NewNavigationLockedError("navigate_to_target")
	}

	requested := h.ship.MaxSpeed()
	if cmd.Speed != nil {
		requested = math.Min(*cmd.Speed, h.ship.MaxSpeed())
	}
	candidate := cmd.Target.Sub(h.ship.Position()).Normalize().Scale(requested)
	return shared.NewSpeedLimitError(maxAbsComponent(candidate), h.ship.MaxSpeed())
}
