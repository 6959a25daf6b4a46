package queries

import (
	"context"
	"fmt"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// GetHeadingHandler - Handles heading and distance queries toward a target
type GetHeadingHandler struct {
	ship *navigation.Ship
}

// NewGetHeadingHandler creates a new get heading handler
func NewGetHeadingHandler(ship *navigation.Ship) *GetHeadingHandler {
	return &GetHeadingHandler{ship: ship}
}

// Handle executes the get heading query
func (h *GetHeadingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*types.GetHeadingQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	return &types.GetHeadingResponse{
		Heading:  h.ship.HeadingTo(query.Target),
		Distance: h.ship.DistanceTo(query.Target),
	}, nil
}
