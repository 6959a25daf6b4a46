package mission_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitalworks/shipnav/internal/adapters/mission"
	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/setup"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

func newRunnerEnv(t *testing.T) (*navigation.Ship, mediator.Mediator) {
	t.Helper()
	ship := navigation.NewShip(navigation.DefaultShipSpec())
	m := mediator.NewMediator()
	require.NoError(t, setup.NewHandlerRegistry(ship).RegisterShipHandlers(m))
	return ship, m
}

func coord(x, y, z float64) *mission.Coord {
	return &mission.Coord{X: x, Y: y, Z: z}
}

func TestRunner_RunsMissionToCompletion(t *testing.T) {
	// Arrange
	ship, m := newRunnerEnv(t)
	runner := mission.NewRunner(m, nil, nil, mission.RunnerOptions{})
	script := &mission.Mission{
		Name: "orbit check",
		Steps: []mission.Step{
			{Op: mission.OpSetPosition, Position: coord(40, 0, 0)},
			{Op: mission.OpAddWaypoint, Point: coord(50, 0, 0)},
			{Op: mission.OpFollowRoute},
			{Op: mission.OpStep, Dt: 0.0625},
			{Op: mission.OpFollowRoute},
			{Op: mission.OpStatus},
		},
	}

	// Act
	result, err := runner.Run(context.Background(), script)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Zero(t, result.Failed())
	assert.Contains(t, result.RunID, "orbit-check-")

	statuses := make([]string, 0, len(result.Steps))
	for _, s := range result.Steps {
		statuses = append(statuses, s.Status)
	}
	assert.Equal(t, []string{
		"position_set",
		"waypoint_added",
		"steering",
		"stepped",
		"waypoint_reached",
		"ok",
	}, statuses)
	assert.True(t, ship.RouteComplete())
	assert.Equal(t, shared.NewVector3(46.25, 0, 0), ship.Position())
}

func TestRunner_RepeatExecutesStepMultipleTimes(t *testing.T) {
	// Arrange
	ship, m := newRunnerEnv(t)
	runner := mission.NewRunner(m, nil, nil, mission.RunnerOptions{})
	script := &mission.Mission{
		Name: "cruise",
		Steps: []mission.Step{
			{Op: mission.OpSetVelocity, Velocity: coord(10, 0, 0)},
			{Op: mission.OpStep, Dt: 1, Repeat: 3},
		},
	}

	// Act
	result, err := runner.Run(context.Background(), script)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Len(t, result.Steps, 4)
	assert.Equal(t, shared.NewVector3(30, 0, 0), ship.Position())
}

func TestRunner_AbortsOnFirstFailure(t *testing.T) {
	// Arrange
	_, m := newRunnerEnv(t)
	runner := mission.NewRunner(m, nil, nil, mission.RunnerOptions{})
	script := &mission.Mission{
		Name: "doomed",
		Steps: []mission.Step{
			{Op: mission.OpMove, Delta: coord(5000, 0, 0)},
			{Op: mission.OpStatus},
		},
	}

	// Act
	result, err := runner.Run(context.Background(), script)

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Completed)
	require.Len(t, result.Steps, 1)
	assert.Error(t, result.Steps[0].Err)
	assert.Equal(t, 1, result.Failed())
}

func TestRunner_ContinueOnErrorRunsRemainingSteps(t *testing.T) {
	// Arrange
	_, m := newRunnerEnv(t)
	runner := mission.NewRunner(m, nil, nil, mission.RunnerOptions{ContinueOnError: true})
	script := &mission.Mission{
		Name: "stubborn",
		Steps: []mission.Step{
			{Op: mission.OpLock},
			{Op: mission.OpMove, Delta: coord(1, 0, 0), Repeat: 5},
			{Op: mission.OpUnlock},
		},
	}

	// Act
	result, err := runner.Run(context.Background(), script)

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Completed)
	// The failing step is not repeated; the run moves on
	require.Len(t, result.Steps, 3)
	assert.Equal(t, "locked", result.Steps[0].Status)
	assert.Error(t, result.Steps[1].Err)
	assert.Equal(t, "unlocked", result.Steps[2].Status)
	assert.Equal(t, 1, result.Failed())
}

func TestRunner_PacedRunCompletes(t *testing.T) {
	// Arrange
	_, m := newRunnerEnv(t)
	runner := mission.NewRunner(m, nil, nil, mission.RunnerOptions{StepRate: 1000})
	script := &mission.Mission{
		Name: "paced",
		Steps: []mission.Step{
			{Op: mission.OpStatus, Repeat: 3},
		},
	}

	// Act
	result, err := runner.Run(context.Background(), script)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Len(t, result.Steps, 3)
}

func TestRunner_CancelledContextStopsPacedRun(t *testing.T) {
	// Arrange
	_, m := newRunnerEnv(t)
	runner := mission.NewRunner(m, nil, nil, mission.RunnerOptions{StepRate: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	script := &mission.Mission{
		Name: "cancelled",
		Steps: []mission.Step{
			{Op: mission.OpStatus, Repeat: 10},
		},
	}

	// Act
	result, err := runner.Run(ctx, script)

	// Assert
	require.Error(t, err)
	assert.False(t, result.Completed)
}
