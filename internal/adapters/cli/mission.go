package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/orbitalworks/shipnav/internal/adapters/mission"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
)

// NewMissionCommand creates the mission command with subcommands
func NewMissionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Run and validate scripted missions",
		Long: `Run a YAML mission script against a fresh ship, or validate one
without executing it.

Examples:
  shipnav mission run examples/missions/supply_run.yaml
  shipnav mission run examples/missions/supply_run.yaml --hz 20 --continue-on-error
  shipnav mission check examples/missions/supply_run.yaml`,
	}

	cmd.AddCommand(newMissionRunCommand())
	cmd.AddCommand(newMissionCheckCommand())

	return cmd
}

// newMissionRunCommand creates the mission run subcommand
func newMissionRunCommand() *cobra.Command {
	var (
		hz              float64
		continueOnError bool
	)

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Execute a mission script",
		Long: `Execute every step of a mission script in order and print the
per-step report and the final ship status.

The ship starts from configuration; the mission's ship section can
override parameters and starting position. Exits non-zero when any
step fails.

Examples:
  shipnav mission run examples/missions/supply_run.yaml
  shipnav mission run examples/missions/patrol.yaml --hz 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := mission.Load(args[0])
			if err != nil {
				return err
			}

			session, err := newSession()
			if err != nil {
				return err
			}

			spec := script.Ship.Spec(session.cfg.Ship.ToSpec())
			start := script.Ship.Start(session.cfg.Ship.StartPosition.ToVector())
			_, m, err := session.model(spec, start)
			if err != nil {
				return err
			}

			stepRate := hz
			if stepRate == 0 {
				stepRate = session.cfg.Simulation.TickRate
			}
			runner := mission.NewRunner(m, session.logger, nil, mission.RunnerOptions{
				StepRate:        stepRate,
				ContinueOnError: continueOnError,
			})

			ctx := context.Background()
			result, err := runner.Run(ctx, script)
			if err != nil {
				return fmt.Errorf("mission run interrupted: %w", err)
			}

			printMissionResult(result)

			response, err := m.Send(ctx, &types.GetStatusQuery{})
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}
			printStatus(response.(*types.GetStatusResponse).Status)

			if !result.Completed {
				return fmt.Errorf("mission %q failed: %d of %d executed steps failed",
					result.Mission, result.Failed(), len(result.Steps))
			}

			fmt.Printf("\n✓ Mission %q completed in %s\n", result.Mission, result.Elapsed)
			return nil
		},
	}

	cmd.Flags().Float64Var(&hz, "hz", 0,
		"Wall-clock steps per second, 0 runs unpaced (0 = from config)")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false,
		"Keep executing remaining steps after one fails")

	return cmd
}

// newMissionCheckCommand creates the mission check subcommand
func newMissionCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a mission script without running it",
		Long: `Parse and validate a mission script: strict YAML decoding, known
operations, required fields per operation.

Examples:
  shipnav mission check examples/missions/supply_run.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := mission.Load(args[0])
			if err != nil {
				return err
			}

			operations := 0
			for _, step := range script.Steps {
				operations += step.Times()
			}

			fmt.Printf("✓ %s is valid\n", args[0])
			fmt.Printf("  Mission:     %s\n", script.Name)
			if script.Description != "" {
				fmt.Printf("  Description: %s\n", script.Description)
			}
			fmt.Printf("  Steps:       %d (%d operations counting repeats)\n",
				len(script.Steps), operations)

			return nil
		},
	}

	return cmd
}

// printMissionResult renders the per-step mission report
func printMissionResult(result *mission.Result) {
	fmt.Printf("Mission Report: %s\n", result.Mission)
	fmt.Printf("Run ID:         %s\n\n", result.RunID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tSTATUS\tERROR")
	fmt.Fprintln(w, "----\t--\t------\t-----")
	for _, step := range result.Steps {
		status := step.Status
		if status == "" {
			status = "-"
		}
		errText := "-"
		if step.Err != nil {
			errText = step.Err.Error()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", step.Index, step.Op, status, errText)
	}
	w.Flush()
	fmt.Println()
}
