package config

import "github.com/orbitalworks/shipnav/internal/domain/navigation"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Ship defaults
	if cfg.Ship.FuelCapacity == 0 {
		cfg.Ship.FuelCapacity = navigation.DefaultFuelCapacity
	}
	if cfg.Ship.FuelRate == 0 {
		cfg.Ship.FuelRate = navigation.DefaultFuelRate
	}
	if cfg.Ship.MaxSpeed == 0 {
		cfg.Ship.MaxSpeed = navigation.DefaultMaxSpeed
	}
	if cfg.Ship.HistoryLimit == 0 {
		cfg.Ship.HistoryLimit = navigation.DefaultHistoryLimit
	}

	// Simulation defaults
	if cfg.Simulation.TickSeconds == 0 {
		cfg.Simulation.TickSeconds = 1.0
	}
	if cfg.Simulation.ArrivalThreshold == 0 {
		cfg.Simulation.ArrivalThreshold = navigation.DefaultArrivalThreshold
	}
	if cfg.Simulation.MaxTicks == 0 {
		cfg.Simulation.MaxTicks = 10000
	}
	// TickRate zero means unpaced, which is the default

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
