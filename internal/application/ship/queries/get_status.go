package queries

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// GetStatusHandler - Handles navigation status queries
type GetStatusHandler struct {
	ship *navigation.Ship
}

// NewGetStatusHandler creates a new get status handler
func NewGetStatusHandler(ship *navigation.Ship) *GetStatusHandler {
	return &GetStatusHandler{ship: ship}
}

// Handle executes the get status query
func (h *GetStatusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*types.GetStatusQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	return &types.GetStatusResponse{Status: h.ship.Status()}, nil
}
