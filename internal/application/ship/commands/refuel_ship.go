package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// RefuelShipHandler - Handles refuel ship commands
type RefuelShipHandler struct {
	ship *navigation.Ship
}

// NewRefuelShipHandler creates a new refuel ship handler
func NewRefuelShipHandler(ship *navigation.Ship) *RefuelShipHandler {
	return &RefuelShipHandler{ship: ship}
}

// Handle executes the refuel ship command
func (h *RefuelShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.RefuelShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	amount := h.ship.Fuel().Capacity - h.ship.FuelLevel() // nil = fill the tank
	if cmd.Amount != nil {
		amount = *cmd.Amount
	}

	added := h.ship.Refuel(amount)

	status := "refueled"
	if added == 0 {
		status = "no_fuel_added"
		if h.ship.Fuel().IsFull() {
			status = "already_full"
		}
	}

	return &types.RefuelShipResponse{
		Status:       status,
		FuelAdded:    added,
		CurrentFuel:  h.ship.FuelLevel(),
		FuelCapacity: h.ship.Fuel().Capacity,
	}, nil
}
