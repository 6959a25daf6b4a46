package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/orbitalworks/shipnav/internal/adapters/mission"
	"github.com/orbitalworks/shipnav/internal/application/mediator"
	"github.com/orbitalworks/shipnav/internal/application/setup"
	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// missionContext holds state for scripted mission scenarios
type missionContext struct {
	ship     *navigation.Ship
	script   *mission.Mission
	parseErr error
	result   *mission.Result
	runErr   error
}

func (c *missionContext) reset() {
	c.ship = nil
	c.script = nil
	c.parseErr = nil
	c.result = nil
	c.runErr = nil
}

// Given steps

func (c *missionContext) aMissionScript(doc *godog.DocString) error {
	c.script, c.parseErr = mission.Parse(strings.NewReader(doc.Content))
	return nil
}

// When steps

func (c *missionContext) iRunTheMission() error {
	if c.parseErr != nil {
		return fmt.Errorf("cannot run a mission that failed to load: %w", c.parseErr)
	}

	spec := c.script.Ship.Spec(navigation.DefaultShipSpec())
	start := c.script.Ship.Start(shared.Vector3{})
	c.ship = navigation.NewShipAt(spec, start)

	m := mediator.NewMediator()
	if err := setup.NewHandlerRegistry(c.ship).RegisterShipHandlers(m); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	runner := mission.NewRunner(m, nil, nil, mission.RunnerOptions{})
	c.result, c.runErr = runner.Run(context.Background(), c.script)
	return c.runErr
}

// Then steps

func (c *missionContext) theScriptShouldLoad() error {
	if c.parseErr != nil {
		return fmt.Errorf("expected the script to load, got error: %v", c.parseErr)
	}
	return nil
}

func (c *missionContext) theScriptShouldBeRejectedWithMessage(fragment string) error {
	if c.parseErr == nil {
		return fmt.Errorf("expected the script to be rejected, but it loaded")
	}
	if !strings.Contains(c.parseErr.Error(), fragment) {
		return fmt.Errorf("expected rejection to mention %q, got: %v", fragment, c.parseErr)
	}
	return nil
}

func (c *missionContext) theMissionShouldComplete() error {
	if c.result == nil {
		return fmt.Errorf("mission was never run")
	}
	if !c.result.Completed {
		return fmt.Errorf("expected the mission to complete, %d steps failed", c.result.Failed())
	}
	return nil
}

func (c *missionContext) theMissionShouldAbortAfterSteps(executed int) error {
	if c.result == nil {
		return fmt.Errorf("mission was never run")
	}
	if c.result.Completed {
		return fmt.Errorf("expected the mission to abort, but it completed")
	}
	if len(c.result.Steps) != executed {
		return fmt.Errorf("expected %d executed steps, got %d", executed, len(c.result.Steps))
	}
	return nil
}

func (c *missionContext) stepShouldReportStatus(index int, status string) error {
	if c.result == nil {
		return fmt.Errorf("mission was never run")
	}
	if index < 1 || index > len(c.result.Steps) {
		return fmt.Errorf("step %d out of range, %d steps executed", index, len(c.result.Steps))
	}
	got := c.result.Steps[index-1].Status
	if got != status {
		return fmt.Errorf("expected step %d status %q, got %q", index, status, got)
	}
	return nil
}

func (c *missionContext) theFailureShouldMention(fragment string) error {
	if c.result == nil {
		return fmt.Errorf("mission was never run")
	}
	for _, step := range c.result.Steps {
		if step.Err != nil && strings.Contains(step.Err.Error(), fragment) {
			return nil
		}
	}
	return fmt.Errorf("no failed step mentions %q", fragment)
}

func (c *missionContext) theRunIDShouldStartWith(prefix string) error {
	if c.result == nil {
		return fmt.Errorf("mission was never run")
	}
	if !strings.HasPrefix(c.result.RunID, prefix) {
		return fmt.Errorf("expected run id starting with %q, got %q", prefix, c.result.RunID)
	}
	return nil
}

func (c *missionContext) theShipShouldEndAt(x, y, z float64) error {
	if c.ship == nil {
		return fmt.Errorf("mission was never run")
	}
	return vectorShouldBe("final position", c.ship.Position(), x, y, z)
}

func (c *missionContext) theRemainingFuelShouldBe(expected float64) error {
	if c.ship == nil {
		return fmt.Errorf("mission was never run")
	}
	if diff := c.ship.FuelLevel() - expected; diff > 1e-6 || diff < -1e-6 {
		return fmt.Errorf("expected remaining fuel %f, got %f", expected, c.ship.FuelLevel())
	}
	return nil
}

// InitializeMissionScenario registers step definitions for scripted mission scenarios
func InitializeMissionScenario(ctx *godog.ScenarioContext) {
	c := &missionContext{}

	// Reset context before each scenario
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a mission script:$`, c.aMissionScript)

	// When steps
	ctx.Step(`^I run the mission$`, c.iRunTheMission)

	// Then steps
	ctx.Step(`^the script should load$`, c.theScriptShouldLoad)
	ctx.Step(`^the script should be rejected with a message mentioning "([^"]*)"$`, c.theScriptShouldBeRejectedWithMessage)
	ctx.Step(`^the mission should complete$`, c.theMissionShouldComplete)
	ctx.Step(`^the mission should abort after (\d+) executed steps?$`, c.theMissionShouldAbortAfterSteps)
	ctx.Step(`^executed step (\d+) should report status "([^"]*)"$`, c.stepShouldReportStatus)
	ctx.Step(`^the failure should mention "([^"]*)"$`, c.theFailureShouldMention)
	ctx.Step(`^the run id should start with "([^"]*)"$`, c.theRunIDShouldStartWith)
	ctx.Step(`^the ship should end at \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.theShipShouldEndAt)
	ctx.Step(`^the remaining fuel should be (-?[\d.]+)$`, c.theRemainingFuelShouldBe)
}
