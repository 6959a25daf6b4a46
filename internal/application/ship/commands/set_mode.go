package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// SetModeHandler - Handles navigation mode switch commands
type SetModeHandler struct {
	ship *navigation.Ship
}

// NewSetModeHandler creates a new set mode handler
func NewSetModeHandler(ship *navigation.Ship) *SetModeHandler {
	return &SetModeHandler{ship: ship}
}

// Handle executes the set mode command
func (h *SetModeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.SetModeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !h.ship.SetMode(cmd.Mode) {
		if !cmd.Mode.IsValid() {
			return nil, shared.NewValidationError("mode", fmt.Sprintf("unknown mode %d", int(cmd.Mode)))
		}
		return nil, shared.NewNavigationLockedError("set_mode")
	}

	return &types.SetModeResponse{
		Status: "mode_set",
		Mode:   h.ship.Mode(),
	}, nil
}
