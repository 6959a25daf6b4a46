package queries

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// GetTrackHandler - Handles position history queries
type GetTrackHandler struct {
	ship *navigation.Ship
}

// NewGetTrackHandler creates a new get track handler
func NewGetTrackHandler(ship *navigation.Ship) *GetTrackHandler {
	return &GetTrackHandler{ship: ship}
}

// Handle executes the get track query
func (h *GetTrackHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*types.GetTrackQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	return &types.GetTrackResponse{Points: h.ship.Track()}, nil
}
