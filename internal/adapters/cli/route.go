package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/orbitalworks/shipnav/internal/application/ship/types"
)

// NewRouteCommand creates the route command with subcommands
func NewRouteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan and follow waypoint routes",
		Long: `Plan a flight over an ordered list of waypoints, or steer the ship
along it tick by tick.

Examples:
  shipnav route plan --waypoints "100,0,0;100,200,0"
  shipnav route follow --waypoints "100,0,0;100,200,0" --dt 0.5 --hz 10`,
	}

	cmd.AddCommand(newRoutePlanCommand())
	cmd.AddCommand(newRouteFollowCommand())

	return cmd
}

// newRoutePlanCommand creates the route plan subcommand
func newRoutePlanCommand() *cobra.Command {
	var waypointsFlag string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the flight plan for a waypoint route",
		Long: `Print leg-by-leg distance and fuel for the given waypoints, starting
from the configured position, and whether the route is within fuel range.

Examples:
  shipnav route plan --waypoints "100,0,0;100,200,0"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parseWaypoints(waypointsFlag)
			if err != nil {
				return err
			}

			session, err := newSession()
			if err != nil {
				return err
			}
			_, m, err := session.defaultModel()
			if err != nil {
				return err
			}

			ctx := context.Background()
			for _, point := range points {
				if _, err := m.Send(ctx, &types.AddWaypointCommand{Waypoint: point}); err != nil {
					return fmt.Errorf("failed to add waypoint: %w", err)
				}
			}

			response, err := m.Send(ctx, &types.PlanRouteQuery{})
			if err != nil {
				return fmt.Errorf("failed to plan route: %w", err)
			}
			plan := response.(*types.PlanRouteResponse).Plan

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LEG\tFROM\tTO\tDISTANCE\tFUEL\tCUMULATIVE")
			fmt.Fprintln(w, "---\t----\t--\t--------\t----\t----------")
			for i, leg := range plan.Legs {
				marker := ""
				if !leg.Reachable {
					marker = "  [OUT OF RANGE]"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%.1f\t%.1f%s\n",
					i+1, leg.From, leg.To, leg.Distance, leg.FuelRequired, leg.CumulativeFuel, marker)
			}
			w.Flush()

			fmt.Printf("\nTotal Distance:  %.1f\n", plan.TotalDistance)
			fmt.Printf("Fuel Required:   %.1f\n", plan.TotalFuel)
			fmt.Printf("Fuel Available:  %.1f\n", plan.FuelAvailable)
			if plan.Reachable {
				fmt.Println("\n✓ Route is within fuel range")
			} else {
				fmt.Println("\n✗ Route exceeds fuel range")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&waypointsFlag, "waypoints", "",
		`Semicolon-separated waypoints "x,y,z;x,y,z" (required)`)

	return cmd
}

// newRouteFollowCommand creates the route follow subcommand
func newRouteFollowCommand() *cobra.Command {
	var (
		waypointsFlag string
		threshold     float64
		dt            float64
		maxTicks      int
		hz            float64
	)

	cmd := &cobra.Command{
		Use:   "follow",
		Short: "Steer the ship along a waypoint route tick by tick",
		Long: `Run the follow/step control loop over the given waypoints until the
route completes, a command is rejected, or the tick budget runs out.

Each tick points the ship at the current waypoint (advancing it once
within the arrival threshold) and then advances simulated time by dt.

Examples:
  shipnav route follow --waypoints "100,0,0;100,200,0"
  shipnav route follow --waypoints "500,0,0" --dt 0.5 --max-ticks 50 --hz 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parseWaypoints(waypointsFlag)
			if err != nil {
				return err
			}

			session, err := newSession()
			if err != nil {
				return err
			}
			_, m, err := session.defaultModel()
			if err != nil {
				return err
			}

			// Flags left at zero fall back to configuration
			sim := session.cfg.Simulation
			if threshold == 0 {
				threshold = sim.ArrivalThreshold
			}
			if dt == 0 {
				dt = sim.TickSeconds
			}
			if maxTicks == 0 {
				maxTicks = sim.MaxTicks
			}
			if hz == 0 {
				hz = sim.TickRate
			}

			ctx := context.Background()
			for _, point := range points {
				if _, err := m.Send(ctx, &types.AddWaypointCommand{Waypoint: point}); err != nil {
					return fmt.Errorf("failed to add waypoint: %w", err)
				}
			}

			var limiter *rate.Limiter
			if hz > 0 {
				limiter = rate.NewLimiter(rate.Limit(hz), 1)
			}

			completed := false
			ticks := 0
			for tick := 1; tick <= maxTicks; tick++ {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						return fmt.Errorf("tick pacing interrupted: %w", err)
					}
				}

				response, err := m.Send(ctx, &types.FollowRouteCommand{Threshold: threshold})
				if err != nil {
					return fmt.Errorf("route following stopped at tick %d: %w", tick, err)
				}
				follow := response.(*types.FollowRouteResponse)
				ticks = tick
				if follow.RouteComplete {
					completed = true
					break
				}

				if _, err := m.Send(ctx, &types.StepTimeCommand{Dt: dt}); err != nil {
					return fmt.Errorf("route following stopped at tick %d: %w", tick, err)
				}
			}

			if !completed {
				return fmt.Errorf("route not complete after %d ticks", maxTicks)
			}

			fmt.Printf("✓ Route complete after %d ticks\n\n", ticks)

			response, err := m.Send(ctx, &types.GetStatusQuery{})
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}
			printStatus(response.(*types.GetStatusResponse).Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&waypointsFlag, "waypoints", "",
		`Semicolon-separated waypoints "x,y,z;x,y,z" (required)`)
	cmd.Flags().Float64Var(&threshold, "threshold", 0,
		"Arrival threshold in distance units (0 = from config)")
	cmd.Flags().Float64Var(&dt, "dt", 0,
		"Simulated seconds per tick (0 = from config)")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", 0,
		"Tick budget before giving up (0 = from config)")
	cmd.Flags().Float64Var(&hz, "hz", 0,
		"Wall-clock ticks per second, 0 runs unpaced (0 = from config)")

	return cmd
}
