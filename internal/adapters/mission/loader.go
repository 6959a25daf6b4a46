// Package mission loads and runs scripted mission files against the
// navigation model.
package mission

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// Operation names accepted in mission steps
const (
	OpMove            = "move"
	OpSetPosition     = "set_position"
	OpSetVelocity     = "set_velocity"
	OpAccelerate      = "accelerate"
	OpStep            = "step"
	OpNavigate        = "navigate"
	OpAddWaypoint     = "add_waypoint"
	OpClearWaypoints  = "clear_waypoints"
	OpAdvanceWaypoint = "advance_waypoint"
	OpFollowRoute     = "follow_route"
	OpRefuel          = "refuel"
	OpSetMode         = "set_mode"
	OpLock            = "lock"
	OpUnlock          = "unlock"
	OpEmergencyStop   = "emergency_stop"
	OpStatus          = "status"
)

// Mission is a scripted sequence of navigation operations loaded from YAML
type Mission struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Ship        *ShipSetup `yaml:"ship"`
	Steps       []Step     `yaml:"steps"`
}

// ShipSetup overrides the configured ship parameters for one mission
type ShipSetup struct {
	FuelCapacity float64 `yaml:"fuel_capacity"`
	FuelRate     float64 `yaml:"fuel_rate"`
	MaxSpeed     float64 `yaml:"max_speed"`
	HistoryLimit int     `yaml:"history_limit"`
	StartAt      *Coord  `yaml:"start_at"`
}

// Coord is a 3D coordinate in mission files
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Step is one scripted operation. Which fields are required depends on
// the op; Validate enforces that at load time.
type Step struct {
	Op           string   `yaml:"op"`
	Delta        *Coord   `yaml:"delta"`
	Position     *Coord   `yaml:"position"`
	Velocity     *Coord   `yaml:"velocity"`
	Acceleration *Coord   `yaml:"acceleration"`
	Target       *Coord   `yaml:"target"`
	Point        *Coord   `yaml:"point"`
	Dt           float64  `yaml:"dt"`
	Speed        *float64 `yaml:"speed"`
	Amount       *float64 `yaml:"amount"`
	Mode         string   `yaml:"mode"`
	Threshold    float64  `yaml:"threshold"`
	Repeat       int      `yaml:"repeat"`
}

// Load reads and validates a mission file
func Load(path string) (*Mission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mission file: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a mission from YAML. Decoding is strict: unknown fields
// are rejected so typos in scripts fail at load time, not mid-run.
func Parse(r io.Reader) (*Mission, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Mission
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode mission: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks mission-level and per-step requirements
func (m *Mission) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("mission name is required")
	}
	if len(m.Steps) == 0 {
		return fmt.Errorf("mission %q has no steps", m.Name)
	}
	for i, step := range m.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Step) validate() error {
	if s.Repeat < 0 {
		return fmt.Errorf("repeat must not be negative")
	}
	switch s.Op {
	case OpMove:
		if s.Delta == nil {
			return fmt.Errorf("op %q requires delta", s.Op)
		}
	case OpSetPosition:
		if s.Position == nil {
			return fmt.Errorf("op %q requires position", s.Op)
		}
	case OpSetVelocity:
		if s.Velocity == nil {
			return fmt.Errorf("op %q requires velocity", s.Op)
		}
	case OpAccelerate:
		if s.Acceleration == nil {
			return fmt.Errorf("op %q requires acceleration", s.Op)
		}
		if s.Dt <= 0 {
			return fmt.Errorf("op %q requires dt > 0", s.Op)
		}
	case OpStep:
		if s.Dt <= 0 {
			return fmt.Errorf("op %q requires dt > 0", s.Op)
		}
	case OpNavigate:
		if s.Target == nil {
			return fmt.Errorf("op %q requires target", s.Op)
		}
	case OpAddWaypoint:
		if s.Point == nil {
			return fmt.Errorf("op %q requires point", s.Op)
		}
	case OpSetMode:
		if _, err := navigation.ParseMode(s.Mode); err != nil {
			return err
		}
	case OpFollowRoute:
		if s.Threshold < 0 {
			return fmt.Errorf("op %q threshold must not be negative", s.Op)
		}
	case OpClearWaypoints, OpAdvanceWaypoint, OpRefuel, OpLock, OpUnlock, OpEmergencyStop, OpStatus:
		// no required fields
	case "":
		return fmt.Errorf("op is required")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// Times returns how many times the step executes (repeat, minimum 1)
func (s *Step) Times() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// ToVector converts a mission coordinate into a domain vector
func (c *Coord) ToVector() shared.Vector3 {
	return shared.NewVector3(c.X, c.Y, c.Z)
}

// Spec merges the mission's ship overrides onto base parameters.
// Zero fields keep the base value; safe on a nil receiver.
func (s *ShipSetup) Spec(base navigation.ShipSpec) navigation.ShipSpec {
	if s == nil {
		return base
	}
	if s.FuelCapacity > 0 {
		base.FuelCapacity = s.FuelCapacity
	}
	if s.FuelRate > 0 {
		base.FuelRate = s.FuelRate
	}
	if s.MaxSpeed > 0 {
		base.MaxSpeed = s.MaxSpeed
	}
	if s.HistoryLimit > 0 {
		base.HistoryLimit = s.HistoryLimit
	}
	return base
}

// Start returns the mission's starting position, or the fallback when
// the mission does not set one
func (s *ShipSetup) Start(fallback shared.Vector3) shared.Vector3 {
	if s == nil || s.StartAt == nil {
		return fallback
	}
	return s.StartAt.ToVector()
}
