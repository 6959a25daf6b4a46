package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"

	"github.com/orbitalworks/shipnav/internal/domain/navigation"
	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// shipContext holds state for navigation entity scenarios
type shipContext struct {
	ship     *navigation.Ship
	ok       bool
	added    float64
	distance float64
	heading  navigation.Heading
	reach    bool
}

func (c *shipContext) reset() {
	c.ship = nil
	c.ok = false
	c.added = 0
	c.distance = 0
	c.heading = navigation.Heading{}
	c.reach = false
}

// Given steps

func (c *shipContext) aShipWithDefaultParameters() error {
	c.ship = navigation.NewShip(navigation.DefaultShipSpec())
	return nil
}

func (c *shipContext) aShipAtPosition(x, y, z float64) error {
	c.ship = navigation.NewShipAt(navigation.DefaultShipSpec(), shared.NewVector3(x, y, z))
	return nil
}

func (c *shipContext) aShipWithFuelCapacityAndMaxSpeed(capacity, maxSpeed float64) error {
	spec := navigation.DefaultShipSpec()
	spec.FuelCapacity = capacity
	spec.MaxSpeed = maxSpeed
	c.ship = navigation.NewShip(spec)
	return nil
}

func (c *shipContext) theShipIsLocked() error {
	if !c.ship.LockNavigation(true) {
		return fmt.Errorf("could not lock navigation")
	}
	return nil
}

func (c *shipContext) theShipHasVelocity(x, y, z float64) error {
	if !c.ship.SetVelocity(shared.NewVector3(x, y, z)) {
		return fmt.Errorf("could not set velocity (%f, %f, %f)", x, y, z)
	}
	return nil
}

func (c *shipContext) theShipHasWaypoints(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("table must have a header row and at least one data row")
	}

	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		x, err := parseTableFloat(cellValue(table, row, "x"))
		if err != nil {
			return fmt.Errorf("row %d column x: %w", i, err)
		}
		y, err := parseTableFloat(cellValue(table, row, "y"))
		if err != nil {
			return fmt.Errorf("row %d column y: %w", i, err)
		}
		z, err := parseTableFloat(cellValue(table, row, "z"))
		if err != nil {
			return fmt.Errorf("row %d column z: %w", i, err)
		}
		if !c.ship.AddWaypoint(shared.NewVector3(x, y, z)) {
			return fmt.Errorf("could not add waypoint %d", i)
		}
	}
	return nil
}

// When steps

func (c *shipContext) iMoveTheShipBy(x, y, z float64) error {
	c.ok = c.ship.Move(shared.NewVector3(x, y, z))
	return nil
}

func (c *shipContext) iSetThePositionTo(x, y, z float64) error {
	c.ok = c.ship.SetPosition(shared.NewVector3(x, y, z))
	return nil
}

func (c *shipContext) iSetTheVelocityTo(x, y, z float64) error {
	c.ok = c.ship.SetVelocity(shared.NewVector3(x, y, z))
	return nil
}

func (c *shipContext) iAccelerateByForSeconds(x, y, z, dt float64) error {
	c.ok = c.ship.Accelerate(shared.NewVector3(x, y, z), dt)
	return nil
}

func (c *shipContext) iStepTimeBySeconds(dt float64) error {
	c.ok = c.ship.Step(dt)
	return nil
}

func (c *shipContext) iNavigateTo(x, y, z float64) error {
	c.ok = c.ship.NavigateToTarget(shared.NewVector3(x, y, z), nil)
	return nil
}

func (c *shipContext) iNavigateToAtSpeed(x, y, z, speed float64) error {
	c.ok = c.ship.NavigateToTarget(shared.NewVector3(x, y, z), &speed)
	return nil
}

func (c *shipContext) iAddAWaypointAt(x, y, z float64) error {
	c.ok = c.ship.AddWaypoint(shared.NewVector3(x, y, z))
	return nil
}

func (c *shipContext) iRefuelUnits(amount float64) error {
	c.added = c.ship.Refuel(amount)
	c.ok = true
	return nil
}

func (c *shipContext) iLockNavigation() error {
	c.ok = c.ship.LockNavigation(true)
	return nil
}

func (c *shipContext) iUnlockNavigation() error {
	c.ok = c.ship.LockNavigation(false)
	return nil
}

func (c *shipContext) iSetTheModeTo(name string) error {
	mode, err := navigation.ParseMode(name)
	if err != nil {
		return err
	}
	c.ok = c.ship.SetMode(mode)
	return nil
}

func (c *shipContext) iTriggerAnEmergencyStop() error {
	c.ok = c.ship.EmergencyStop()
	return nil
}

func (c *shipContext) iAdvanceTheWaypoint() error {
	c.ok = c.ship.AdvanceWaypoint()
	return nil
}

func (c *shipContext) iClearTheWaypoints() error {
	c.ok = c.ship.ClearWaypoints()
	return nil
}

func (c *shipContext) iFollowTheRouteWithThreshold(threshold float64) error {
	c.ok = c.ship.FollowRoute(threshold)
	return nil
}

func (c *shipContext) iFollowTheRouteUntilCompleteWithDtAndAtMostTicks(dt float64, maxTicks int) error {
	for tick := 0; tick < maxTicks; tick++ {
		if c.ship.RouteComplete() {
			return nil
		}
		if !c.ship.FollowRoute(navigation.DefaultArrivalThreshold) {
			return fmt.Errorf("route following rejected at tick %d", tick+1)
		}
		if c.ship.RouteComplete() {
			return nil
		}
		if !c.ship.Step(dt) {
			return fmt.Errorf("time step rejected at tick %d", tick+1)
		}
	}
	return fmt.Errorf("route not complete after %d ticks", maxTicks)
}

func (c *shipContext) iComputeTheHeadingTo(x, y, z float64) error {
	c.heading = c.ship.HeadingTo(shared.NewVector3(x, y, z))
	return nil
}

func (c *shipContext) iMeasureTheDistanceTo(x, y, z float64) error {
	c.distance = c.ship.DistanceTo(shared.NewVector3(x, y, z))
	return nil
}

func (c *shipContext) iCheckWhetherIsReachable(x, y, z float64) error {
	c.reach = c.ship.CanReach(shared.NewVector3(x, y, z))
	return nil
}

// Then steps

func (c *shipContext) theOperationShouldSucceed() error {
	if !c.ok {
		return fmt.Errorf("expected the operation to succeed, but it was rejected")
	}
	return nil
}

func (c *shipContext) theOperationShouldBeRejected() error {
	if c.ok {
		return fmt.Errorf("expected the operation to be rejected, but it succeeded")
	}
	return nil
}

func (c *shipContext) thePositionShouldBe(x, y, z float64) error {
	return vectorShouldBe("position", c.ship.Position(), x, y, z)
}

func (c *shipContext) theVelocityShouldBe(x, y, z float64) error {
	return vectorShouldBe("velocity", c.ship.Velocity(), x, y, z)
}

func (c *shipContext) theFuelLevelShouldBe(expected float64) error {
	if math.Abs(c.ship.FuelLevel()-expected) > 1e-6 {
		return fmt.Errorf("expected fuel level %f, got %f", expected, c.ship.FuelLevel())
	}
	return nil
}

func (c *shipContext) theRefuelShouldAddUnits(expected float64) error {
	if math.Abs(c.added-expected) > 1e-6 {
		return fmt.Errorf("expected refuel to add %f units, got %f", expected, c.added)
	}
	return nil
}

func (c *shipContext) theModeShouldBe(expected string) error {
	if c.ship.Mode().Name() != expected {
		return fmt.Errorf("expected mode %s, got %s", expected, c.ship.Mode().Name())
	}
	return nil
}

func (c *shipContext) theShipShouldBeLocked() error {
	if !c.ship.Locked() {
		return fmt.Errorf("expected the ship to be locked, but it was not")
	}
	return nil
}

func (c *shipContext) theShipShouldNotBeLocked() error {
	if c.ship.Locked() {
		return fmt.Errorf("expected the ship not to be locked, but it was")
	}
	return nil
}

func (c *shipContext) theTrackShouldContainPoints(expected int) error {
	if c.ship.TrackLength() != expected {
		return fmt.Errorf("expected %d track points, got %d", expected, c.ship.TrackLength())
	}
	return nil
}

func (c *shipContext) theWaypointsRemainingShouldBe(expected int) error {
	if c.ship.WaypointsRemaining() != expected {
		return fmt.Errorf("expected %d waypoints remaining, got %d", expected, c.ship.WaypointsRemaining())
	}
	return nil
}

func (c *shipContext) theRouteShouldBeComplete() error {
	if !c.ship.RouteComplete() {
		return fmt.Errorf("expected the route to be complete, but it was not")
	}
	return nil
}

func (c *shipContext) theCurrentWaypointShouldBe(x, y, z float64) error {
	waypoint, ok := c.ship.NextWaypoint()
	if !ok {
		return fmt.Errorf("expected a current waypoint, but the route is exhausted")
	}
	return vectorShouldBe("waypoint", waypoint, x, y, z)
}

func (c *shipContext) theAzimuthShouldBeDegrees(expected float64) error {
	azimuth, _ := c.heading.Degrees()
	if math.Abs(azimuth-expected) > 0.01 {
		return fmt.Errorf("expected azimuth %f degrees, got %f", expected, azimuth)
	}
	return nil
}

func (c *shipContext) theElevationShouldBeDegrees(expected float64) error {
	_, elevation := c.heading.Degrees()
	if math.Abs(elevation-expected) > 0.01 {
		return fmt.Errorf("expected elevation %f degrees, got %f", expected, elevation)
	}
	return nil
}

func (c *shipContext) theDistanceShouldBe(expected float64) error {
	if math.Abs(c.distance-expected) > 1e-6 {
		return fmt.Errorf("expected distance %f, got %f", expected, c.distance)
	}
	return nil
}

func (c *shipContext) theTargetShouldBeReachable() error {
	if !c.reach {
		return fmt.Errorf("expected the target to be reachable, but it was not")
	}
	return nil
}

func (c *shipContext) theTargetShouldNotBeReachable() error {
	if c.reach {
		return fmt.Errorf("expected the target not to be reachable, but it was")
	}
	return nil
}

// Helpers

func vectorShouldBe(name string, actual shared.Vector3, x, y, z float64) error {
	expected := shared.NewVector3(x, y, z)
	if math.Abs(actual.X-x) > 1e-6 || math.Abs(actual.Y-y) > 1e-6 || math.Abs(actual.Z-z) > 1e-6 {
		return fmt.Errorf("expected %s %s, got %s", name, expected, actual)
	}
	return nil
}

func cellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}

func parseTableFloat(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", raw)
	}
	return value, nil
}

// InitializeShipScenario registers step definitions for navigation entity scenarios
func InitializeShipScenario(ctx *godog.ScenarioContext) {
	c := &shipContext{}

	// Reset context before each scenario
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a ship with default parameters$`, c.aShipWithDefaultParameters)
	ctx.Step(`^a ship at position \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.aShipAtPosition)
	ctx.Step(`^a ship with fuel capacity (-?[\d.]+) and max speed (-?[\d.]+)$`, c.aShipWithFuelCapacityAndMaxSpeed)
	ctx.Step(`^the ship is locked$`, c.theShipIsLocked)
	ctx.Step(`^the ship has velocity \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.theShipHasVelocity)
	ctx.Step(`^the ship has waypoints:$`, c.theShipHasWaypoints)

	// When steps
	ctx.Step(`^I move the ship by \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.iMoveTheShipBy)
	ctx.Step(`^I set the position to \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.iSetThePositionTo)
	ctx.Step(`^I set the velocity to \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.iSetTheVelocityTo)
	ctx.Step(`^I accelerate by \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\) for (-?[\d.]+) seconds$`, c.iAccelerateByForSeconds)
	ctx.Step(`^I step time by (-?[\d.]+) seconds$`, c.iStepTimeBySeconds)
	ctx.Step(`^I navigate to \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.iNavigateTo)
	ctx.Step(`^I navigate to \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\) at speed (-?[\d.]+)$`, c.iNavigateToAtSpeed)
	ctx.Step(`^I add a waypoint at \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.iAddAWaypointAt)
	ctx.Step(`^I refuel (-?[\d.]+) units$`, c.iRefuelUnits)
	ctx.Step(`^I lock navigation$`, c.iLockNavigation)
	ctx.Step(`^I unlock navigation$`, c.iUnlockNavigation)
	ctx.Step(`^I set the mode to "([^"]*)"$`, c.iSetTheModeTo)
	ctx.Step(`^I trigger an emergency stop$`, c.iTriggerAnEmergencyStop)
	ctx.Step(`^I advance the waypoint$`, c.iAdvanceTheWaypoint)
	ctx.Step(`^I clear the waypoints$`, c.iClearTheWaypoints)
	ctx.Step(`^I follow the route with threshold (-?[\d.]+)$`, c.iFollowTheRouteWithThreshold)
	ctx.Step(`^I follow the route until complete with dt (-?[\d.]+) and at most (\d+) ticks$`, c.iFollowTheRouteUntilCompleteWithDtAndAtMostTicks)
	ctx.Step(`^I compute the heading to \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.iComputeTheHeadingTo)
	ctx.Step(`^I measure the distance to \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.iMeasureTheDistanceTo)
	ctx.Step(`^I check whether \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\) is reachable$`, c.iCheckWhetherIsReachable)

	// Then steps
	ctx.Step(`^the operation should succeed$`, c.theOperationShouldSucceed)
	ctx.Step(`^the operation should be rejected$`, c.theOperationShouldBeRejected)
	ctx.Step(`^the position should be \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.thePositionShouldBe)
	ctx.Step(`^the velocity should be \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.theVelocityShouldBe)
	ctx.Step(`^the fuel level should be (-?[\d.]+)$`, c.theFuelLevelShouldBe)
	ctx.Step(`^the refuel should add (-?[\d.]+) units$`, c.theRefuelShouldAddUnits)
	ctx.Step(`^the mode should be "([^"]*)"$`, c.theModeShouldBe)
	ctx.Step(`^the ship should be locked$`, c.theShipShouldBeLocked)
	ctx.Step(`^the ship should not be locked$`, c.theShipShouldNotBeLocked)
	ctx.Step(`^the track should contain (\d+) points?$`, c.theTrackShouldContainPoints)
	ctx.Step(`^the waypoints remaining should be (\d+)$`, c.theWaypointsRemainingShouldBe)
	ctx.Step(`^the route should be complete$`, c.theRouteShouldBeComplete)
	ctx.Step(`^the current waypoint should be \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`, c.theCurrentWaypointShouldBe)
	ctx.Step(`^the azimuth should be (-?[\d.]+) degrees$`, c.theAzimuthShouldBeDegrees)
	ctx.Step(`^the elevation should be (-?[\d.]+) degrees$`, c.theElevationShouldBeDegrees)
	ctx.Step(`^the distance should be (-?[\d.]+)$`, c.theDistanceShouldBe)
	ctx.Step(`^the target should be reachable$`, c.theTargetShouldBeReachable)
	ctx.Step(`^the target should not be reachable$`, c.theTargetShouldNotBeReachable)
}
