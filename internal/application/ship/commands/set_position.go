package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// SetPositionHandler - Handles absolute position commands
type SetPositionHandler struct {
	ship *navigation.Ship
}

// NewSetPositionHandler creates a new set position handler
func NewSetPositionHandler(ship *navigation.Ship) *SetPositionHandler {
	return &SetPositionHandler{ship: ship}
}

// Handle executes the set position command
func (h *SetPositionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.SetPositionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !h.ship.SetPosition(cmd.Position) {
		return nil, shared.NewNavigationLockedError("set_position")
	}

	return &types.SetPositionResponse{
		Status:   "position_set",
		Position: h.ship.Position(),
	}, nil
}
