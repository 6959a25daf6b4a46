package mission

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"golang.org/x/time/rate"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/ship/types"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
	"github.com/orbitalworks/shipnav/pkg/utils"
)

// RunnerOptions tune mission execution
type RunnerOptions struct {
	// Wall-clock steps per second; 0 runs unpaced
	StepRate float64

	// Keep executing remaining steps after one fails
	ContinueOnError bool
}

// Runner executes mission steps through the mediator
type Runner struct {
	mediator mediator.Mediator
	logger   *slog.Logger
	clock    shared.Clock
	limiter  *rate.Limiter
	opts     RunnerOptions
}

// NewRunner creates a mission runner.
// If clock is nil, uses RealClock.
func NewRunner(m mediator.Mediator, logger *slog.Logger, clock shared.Clock, opts RunnerOptions) *Runner {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	var limiter *rate.Limiter
	if opts.StepRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.StepRate), 1)
	}
	return &Runner{
		mediator: m,
		logger:   logger,
		clock:    clock,
		limiter:  limiter,
		opts:     opts,
	}
}

// StepResult records the outcome of one executed step
type StepResult struct {
	Index  int
	Op     string
	Status string
	Err    error
}

// Result is the outcome of a full mission run
type Result struct {
	RunID     string
	Mission   string
	Steps     []StepResult
	Completed bool
	Elapsed   time.Duration
}

// Failed returns the number of steps that ended in an error
func (r *Result) Failed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Err != nil {
			n++
		}
	}
	return n
}

// Run executes every mission step in order. A failed step stops the run
// unless ContinueOnError is set; pacing interruptions (cancelled context)
// stop it always. Step failures are reported in the Result, not as an
// error return.
func (r *Runner) Run(ctx context.Context, m *Mission) (*Result, error) {
	result := &Result{
		RunID:     utils.GenerateRunID(m.Name),
		Mission:   m.Name,
		Completed: true,
	}
	logger := r.logger.With(
		slog.String("run_id", result.RunID),
		slog.String("mission", m.Name),
	)
	start := r.clock.Now()
	logger.Info("mission started", slog.Int("steps", len(m.Steps)))

	for i, step := range m.Steps {
		for n := 0; n < step.Times(); n++ {
			if r.limiter != nil {
				if err := r.limiter.Wait(ctx); err != nil {
					result.Completed = false
					result.Elapsed = r.clock.Now().Sub(start)
					return result, fmt.Errorf("step pacing interrupted: %w", err)
				}
			}

			response, err := r.mediator.Send(ctx, buildRequest(step))
			stepResult := StepResult{Index: i + 1, Op: step.Op, Status: statusOf(response), Err: err}
			result.Steps = append(result.Steps, stepResult)

			if err != nil {
				result.Completed = false
				logger.Error("step failed",
					slog.Int("step", i+1),
					slog.String("op", step.Op),
					slog.String("error", err.Error()))
				if !r.opts.ContinueOnError {
					result.Elapsed = r.clock.Now().Sub(start)
					logger.Info("mission aborted", slog.Int("failed_steps", result.Failed()))
					return result, nil
				}
				// Stop repeating a failing step, move on to the next one
				break
			}

			logger.Debug("step executed",
				slog.Int("step", i+1),
				slog.String("op", step.Op),
				slog.String("status", stepResult.Status))

			if status, ok := response.(*types.GetStatusResponse); ok {
				logger.Info("ship status",
					slog.String("position", status.Status.Position.String()),
					slog.Float64("fuel", status.Status.FuelLevel),
					slog.String("mode", status.Status.Mode),
					slog.Int("waypoints_remaining", status.Status.WaypointsRemaining))
			}
		}
	}

	result.Elapsed = r.clock.Now().Sub(start)
	logger.Info("mission finished",
		slog.Bool("completed", result.Completed),
		slog.Int("failed_steps", result.Failed()),
		slog.Duration("elapsed", result.Elapsed))
	return result, nil
}

// buildRequest maps a validated step onto its application request
func buildRequest(step Step) mediator.Request {
	switch step.Op {
	case OpMove:
		return &types.MoveShipCommand{Delta: step.Delta.ToVector()}
	case OpSetPosition:
		return &types.SetPositionCommand{Position: step.Position.ToVector()}
	case OpSetVelocity:
		return &types.SetVelocityCommand{Velocity: step.Velocity.ToVector()}
	case OpAccelerate:
		return &types.AccelerateCommand{Acceleration: step.Acceleration.ToVector(), Dt: step.Dt}
	case OpStep:
		return &types.StepTimeCommand{Dt: step.Dt}
	case OpNavigate:
		return &types.NavigateToTargetCommand{Target: step.Target.ToVector(), Speed: step.Speed}
	case OpAddWaypoint:
		return &types.AddWaypointCommand{Waypoint: step.Point.ToVector()}
	case OpClearWaypoints:
		return &types.ClearWaypointsCommand{}
	case OpAdvanceWaypoint:
		return &types.AdvanceWaypointCommand{}
	case OpFollowRoute:
		return &types.FollowRouteCommand{Threshold: step.Threshold}
	case OpRefuel:
		return &types.RefuelShipCommand{Amount: step.Amount}
	case OpSetMode:
		mode, _ := navigation.ParseMode(step.Mode)
		return &types.SetModeCommand{Mode: mode}
	case OpLock:
		return &types.SetNavigationLockCommand{Locked: true}
	case OpUnlock:
		return &types.SetNavigationLockCommand{Locked: false}
	case OpEmergencyStop:
		return &types.EmergencyStopCommand{}
	case OpStatus:
		return &types.GetStatusQuery{}
	}
	return nil
}

// statusOf pulls the Status string out of a response when it has one
func statusOf(response mediator.Response) string {
	if response == nil {
		return ""
	}
	v := reflect.ValueOf(response)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	field := v.FieldByName("Status")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return "ok"
}
