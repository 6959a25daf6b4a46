package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// MoveShipHandler - Handles relative translation commands
type MoveShipHandler struct {
	ship *navigation.Ship
}

// NewMoveShipHandler creates a new move ship handler
func NewMoveShipHandler(ship *navigation.Ship) *MoveShipHandler {
	return &MoveShipHandler{ship: ship}
}

// Handle executes the move ship command
func (h *MoveShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.MoveShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	fuelBefore := h.ship.FuelLevel()
	if !h.ship.Move(cmd.Delta) {
		return nil, moveRejection(h.ship, cmd.Delta, "move")
	}

	status := "moved"
	if cmd.Delta.IsZero() {
		status = "hold"
	}

	return &types.MoveShipResponse{
		Status:        status,
		Position:      h.ship.Position(),
		FuelConsumed:  fuelBefore - h.ship.FuelLevel(),
		FuelRemaining: h.ship.FuelLevel(),
	}, nil
}
