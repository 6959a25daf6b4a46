package navigation

import (
	"fmt"
	"strings"
)

// Mode represents the navigation control mode
type Mode int

const (
	ModeManual Mode = iota
	ModeAutopilot
	ModeEmergency
)

var modeNames = map[Mode]string{
	ModeManual:    "MANUAL",
	ModeAutopilot: "AUTOPILOT",
	ModeEmergency: "EMERGENCY",
}

// Name returns the mode name
func (m Mode) Name() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

func (m Mode) String() string {
	return m.Name()
}

// IsValid checks if the mode is one of the defined modes
func (m Mode) IsValid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode parses a mode name string, ignoring case and surrounding space
func ParseMode(name string) (Mode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for mode, modeName := range modeNames {
		if modeName == normalized {
			return mode, nil
		}
	}
	return ModeManual, fmt.Errorf("invalid navigation mode: %s", name)
}
