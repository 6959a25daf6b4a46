package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the configured ship's navigation status",
		Long: `Show the navigation snapshot of the ship built from configuration:
position, velocity, fuel, mode, lock state and route progress.

Examples:
  shipnav status
  shipnav status --config configs/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}
			_, m, err := session.defaultModel()
			if err != nil {
				return err
			}

			response, err := m.Send(context.Background(), &types.GetStatusQuery{})
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}
			result := response.(*types.GetStatusResponse)

			printStatus(result.Status)
			return nil
		},
	}

	return cmd
}

// printStatus renders a navigation snapshot
func printStatus(status navigation.Status) {
	engine := "idle"
	if status.EngineActive {
		engine = "active"
	}
	locked := "no"
	if status.Locked {
		locked = "yes"
	}

	fmt.Printf("Navigation Status\n")
	fmt.Printf("=================\n\n")
	fmt.Printf("Position:        %s\n", status.Position)
	fmt.Printf("Velocity:        %s\n", status.Velocity)
	fmt.Printf("Mode:            %s\n", status.Mode)
	fmt.Printf("Locked:          %s\n", locked)
	fmt.Printf("Engine:          %s\n", engine)
	fmt.Printf("Fuel:            %.1f / %.1f (%.1f%%)\n",
		status.FuelLevel, status.FuelCapacity, status.FuelPercentage)
	fmt.Printf("Waypoints Left:  %d\n", status.WaypointsRemaining)
	fmt.Printf("Track Points:    %d\n", status.TrackLength)
}
