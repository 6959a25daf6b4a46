package setup

import (
	"reflect"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/commands"
	"github.com/orbitalworks/shipnav/internal/application/ship/queries"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// HandlerRegistry holds the dependencies needed to create handlers
type HandlerRegistry struct {
	ship *navigation.Ship
}

// NewHandlerRegistry creates a registry around the ship under control
func NewHandlerRegistry(ship *navigation.Ship) *HandlerRegistry {
	return &HandlerRegistry{ship: ship}
}

// RegisterShipHandlers registers every ship command and query handler with
// the mediator. Each request type maps to exactly one handler.
func (r *HandlerRegistry) RegisterShipHandlers(m mediator.Mediator) error {
	registrations := []struct {
		request mediator.Request
		handler mediator.RequestHandler
	}{
		// Commands
		{&types.MoveShipCommand{}, commands.NewMoveShipHandler(r.ship)},
		{&types.SetPositionCommand{}, commands.NewSetPositionHandler(r.ship)},
		{&types.SetVelocityCommand{}, commands.NewSetVelocityHandler(r.ship)},
		{&types.AccelerateCommand{}, commands.NewAccelerateHandler(r.ship)},
		{&types.StepTimeCommand{}, commands.NewStepTimeHandler(r.ship)},
		{&types.NavigateToTargetCommand{}, commands.NewNavigateToTargetHandler(r.ship)},
		{&types.AddWaypointCommand{}, commands.NewAddWaypointHandler(r.ship)},
		{&types.ClearWaypointsCommand{}, commands.NewClearWaypointsHandler(r.ship)},
		{&types.AdvanceWaypointCommand{}, commands.NewAdvanceWaypointHandler(r.ship)},
		{&types.FollowRouteCommand{}, commands.NewFollowRouteHandler(r.ship)},
		{&types.RefuelShipCommand{}, commands.NewRefuelShipHandler(r.ship)},
		{&types.SetModeCommand{}, commands.NewSetModeHandler(r.ship)},
		{&types.SetNavigationLockCommand{}, commands.NewSetNavigationLockHandler(r.ship)},
		{&types.EmergencyStopCommand{}, commands.NewEmergencyStopHandler(r.ship)},

		// Queries
		{&types.GetStatusQuery{}, queries.NewGetStatusHandler(r.ship)},
		{&types.GetHeadingQuery{}, queries.NewGetHeadingHandler(r.ship)},
		{&types.CanReachQuery{}, queries.NewCanReachHandler(r.ship)},
		{&types.PlanRouteQuery{}, queries.NewPlanRouteHandler(r.ship)},
		{&types.GetTrackQuery{}, queries.NewGetTrackHandler(r.ship)},
	}

	for _, reg := range registrations {
		if err := m.Register(reflect.TypeOf(reg.request), reg.handler); err != nil {
			return err
		}
	}

	return nil
}
