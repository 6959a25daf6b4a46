package config

import (
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// ShipConfig holds the physical parameters of the ship being navigated
type ShipConfig struct {
	// Fuel tank capacity in units
	FuelCapacity float64 `mapstructure:"fuel_capacity" validate:"min=0"`

	// Fuel consumed per unit of distance moved
	FuelRate float64 `mapstructure:"fuel_rate" validate:"min=0"`

	// Maximum speed per axis
	MaxSpeed float64 `mapstructure:"max_speed" validate:"min=0"`

	// Number of visited positions kept in the track
	HistoryLimit int `mapstructure:"history_limit" validate:"min=0"`

	// Initial position
	StartPosition PositionConfig `mapstructure:"start_position"`
}

// PositionConfig holds a 3D coordinate
type PositionConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
	Z float64 `mapstructure:"z"`
}

// ToSpec converts the ship configuration into domain ship parameters
func (c ShipConfig) ToSpec() navigation.ShipSpec {
	return navigation.ShipSpec{
		FuelCapacity: c.FuelCapacity,
		FuelRate:     c.FuelRate,
		MaxSpeed:     c.MaxSpeed,
		HistoryLimit: c.HistoryLimit,
	}
}

// ToVector converts the configured coordinate into a domain vector
func (c PositionConfig) ToVector() shared.Vector3 {
	return shared.NewVector3(c.X, c.Y, c.Z)
}
