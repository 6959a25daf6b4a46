// Package cli wires the navigation model behind a cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shipnav",
		Short: "shipnav - 3D spaceship navigation model",
		Long: `shipnav simulates a single spaceship in open 3D space: position,
velocity, fuel, waypoint routes, navigation modes and lock state.

Each invocation builds a fresh ship from configuration, runs the requested
operations and prints the outcome.

Examples:
  shipnav status
  shipnav route plan --waypoints "100,0,0;100,200,0"
  shipnav route follow --waypoints "100,0,0;100,200,0" --hz 10
  shipnav mission run examples/missions/supply_run.yaml
  shipnav mission check examples/missions/supply_run.yaml`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/shipnav)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewRouteCommand())
	rootCmd.AddCommand(NewMissionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
