package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// AccelerateHandler - Handles thrust commands
type AccelerateHandler struct {
	ship *navigation.Ship
}

// NewAccelerateHandler creates a new accelerate handler
func NewAccelerateHandler(ship *navigation.Ship) *AccelerateHandler {
	return &AccelerateHandler{ship: ship}
}

// Handle executes the accelerate command
func (h *AccelerateHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.AccelerateCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	fuelBefore := h.ship.FuelLevel()
	if !h.ship.Accelerate(cmd.Acceleration, cmd.Dt) {
		return nil, h.rejection(cmd)
	}

	return &types.AccelerateResponse{
		Status:        "accelerated",
		Velocity:      h.ship.Velocity(),
		FuelConsumed:  fuelBefore - h.ship.FuelLevel(),
		FuelRemaining: h.ship.FuelLevel(),
	}, nil
}

// rejection walks the entity's own decision order: lock, duration, speed
// limit, then fuel
func (h *AccelerateHandler) rejection(cmd *types.AccelerateCommand) error {
	if h.ship.Locked() {
		return shared.NewNavigationLockedError("accelerate")
	}
	if cmd.Dt <= 0 {
		return shared.NewInvalidDurationError(cmd.Dt)
	}
	next := h.ship.Velocity().Add(cmd.Acceleration.Scale(cmd.Dt))
	if maxAbsComponent(next) > h.ship.MaxSpeed() {
		return shared.NewSpeedLimitError(maxAbsComponent(next), h.ship.MaxSpeed())
	}
	return shared.NewInsufficientFuelError(h.ship.EstimateThrustFuel(cmd.Acceleration, cmd.Dt), h.ship.FuelLevel())
}
