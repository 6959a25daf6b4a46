package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// EmergencyStopHandler - Handles emergency stop commands
type EmergencyStopHandler struct {
	ship *navigation.Ship
}

// NewEmergencyStopHandler creates a new emergency stop handler
func NewEmergencyStopHandler(ship *navigation.Ship) *EmergencyStopHandler {
	return &EmergencyStopHandler{ship: ship}
}

// Handle executes the emergency stop command. It cannot fail: the stop
// overrides locks and works in every mode.
func (h *EmergencyStopHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*types.EmergencyStopCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	h.ship.EmergencyStop()

	return &types.EmergencyStopResponse{
		Status:   "stopped",
		Mode:     h.ship.Mode(),
		Velocity: h.ship.Velocity(),
	}, nil
}
