package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// StepTimeHandler - Handles simulation time step commands
type StepTimeHandler struct {
	ship *navigation.Ship
}

// NewStepTimeHandler creates a new step time handler
func NewStepTimeHandler(ship *navigation.Ship) *StepTimeHandler {
	return &StepTimeHandler{ship: ship}
}

// Handle executes the step time command
func (h *StepTimeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.StepTimeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !h.ship.Step(cmd.Dt) {
		return nil, h.rejection(cmd)
	}

	return &types.StepTimeResponse{
		Status:        "stepped",
		Position:      h.ship.Position(),
		FuelRemaining: h.ship.FuelLevel(),
	}, nil
}

func (h *StepTimeHandler) rejection(cmd *types.StepTimeCommand) error {
	if h.ship.Locked() {
		return shared.NewNavigationLockedError("step")
	}
	if cmd.Dt <= 0 {
		return shared.NewInvalidDurationError(cmd.Dt)
	}
	distance := h.ship.Velocity().Scale(cmd.Dt).Length()
	return shared.NewInsufficientFuelError(h.ship.EstimateFuel(distance), h.ship.FuelLevel())
}
