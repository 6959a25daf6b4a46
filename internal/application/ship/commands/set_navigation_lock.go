package commands

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// SetNavigationLockHandler - Handles lock and unlock commands
type SetNavigationLockHandler struct {
	ship *navigation.Ship
}

// NewSetNavigationLockHandler creates a new set navigation lock handler
func NewSetNavigationLockHandler(ship *navigation.Ship) *SetNavigationLockHandler {
	return &SetNavigationLockHandler{ship: ship}
}

// Handle executes the set navigation lock command
func (h *SetNavigationLockHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.SetNavigationLockCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !h.ship.LockNavigation(cmd.Locked) {
		// Unlocking always succeeds, so the only rejection is engaging
		// the lock outside manual mode
		return nil, shared.NewLockStateError(fmt.Sprintf("cannot lock navigation in %s mode", h.ship.Mode()))
	}

	status := "unlocked"
	if cmd.Locked {
		status = "locked"
	}

	return &types.SetNavigationLockResponse{
		Status: status,
		Locked: h.ship.Locked(),
	}, nil
}
