package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	applogging "github.com/orbitalworks/shipnav/internal/application/logging"
	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/setup"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
	"github.com/orbitalworks/shipnav/internal/infrastructure/config"
	"github.com/orbitalworks/shipnav/internal/infrastructure/logging"
)

// session holds the configuration and logger shared by all subcommands
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

// newSession loads configuration and builds the process logger.
// The --verbose flag forces debug-level logging.
func newSession() (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return &session{cfg: cfg, logger: logging.New(cfg.Logging)}, nil
}

// model builds a ship and a mediator wired with every handler and the
// request logging middleware
func (s *session) model(spec navigation.ShipSpec, start shared.Vector3) (*navigation.Ship, mediator.Mediator, error) {
	ship := navigation.NewShipAt(spec, start)

	m := mediator.NewMediator()
	m.RegisterMiddleware(applogging.RequestMiddleware(s.logger))
	if err := setup.NewHandlerRegistry(ship).RegisterShipHandlers(m); err != nil {
		return nil, nil, fmt.Errorf("failed to register handlers: %w", err)
	}
	return ship, m, nil
}

// defaultModel builds the model from configuration alone
func (s *session) defaultModel() (*navigation.Ship, mediator.Mediator, error) {
	return s.model(s.cfg.Ship.ToSpec(), s.cfg.Ship.StartPosition.ToVector())
}

// parseWaypoints parses "x,y,z;x,y,z;..." into coordinates
func parseWaypoints(raw string) ([]shared.Vector3, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("no waypoints given")
	}

	var points []shared.Vector3
	for i, part := range strings.Split(raw, ";") {
		fields := strings.Split(part, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("waypoint %d: expected x,y,z but got %q", i+1, strings.TrimSpace(part))
		}
		var coords [3]float64
		for j, field := range fields {
			value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("waypoint %d: bad coordinate %q", i+1, strings.TrimSpace(field))
			}
			coords[j] = value
		}
		points = append(points, shared.NewVector3(coords[0], coords[1], coords[2]))
	}
	return points, nil
}
