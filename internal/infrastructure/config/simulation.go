package config

// SimulationConfig holds the control loop parameters used when following
// routes and running missions
type SimulationConfig struct {
	// Simulated seconds advanced per tick
	TickSeconds float64 `mapstructure:"tick_seconds" validate:"min=0"`

	// Distance at which a waypoint counts as reached
	ArrivalThreshold float64 `mapstructure:"arrival_threshold" validate:"min=0"`

	// Upper bound on control loop iterations
	MaxTicks int `mapstructure:"max_ticks" validate:"min=1"`

	// Wall-clock ticks per second; 0 runs unpaced
	TickRate float64 `mapstructure:"tick_rate" validate:"min=0"`
}
