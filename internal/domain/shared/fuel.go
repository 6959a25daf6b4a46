package shared

import "fmt"

// Fuel represents an immutable fuel tank state. Consumption is
// continuous, so levels are tracked as float64 units.
type Fuel struct {
	Current  float64
	Capacity float64
}

// NewFuel creates a fuel value object with validation
func NewFuel(current, capacity float64) (Fuel, error) {
	if capacity < 0 {
		return Fuel{}, NewValidationError("capacity", "cannot be negative")
	}
	if current < 0 {
		return Fuel{}, NewValidationError("current", "cannot be negative")
	}
	if current > capacity {
		return Fuel{}, NewValidationError("current", "cannot exceed capacity")
	}

	return Fuel{Current: current, Capacity: capacity}, nil
}

// FullTank creates fuel filled to the given capacity
func FullTank(capacity float64) Fuel {
	if capacity < 0 {
		capacity = 0
	}
	return Fuel{Current: capacity, Capacity: capacity}
}

// CanCover checks if the tank holds at least the required amount
func (f Fuel) CanCover(required float64) bool {
	return f.Current >= required
}

// Consume returns new Fuel with amount removed, floored at empty
func (f Fuel) Consume(amount float64) Fuel {
	newCurrent := f.Current - amount
	if newCurrent < 0 {
		newCurrent = 0
	}
	return Fuel{Current: newCurrent, Capacity: f.Capacity}
}

// Add returns new Fuel with amount added, capped at capacity,
// along with the quantity actually accepted by the tank.
func (f Fuel) Add(amount float64) (Fuel, float64) {
	if amount <= 0 {
		return f, 0
	}
	newCurrent := f.Current + amount
	if newCurrent > f.Capacity {
		newCurrent = f.Capacity
	}
	return Fuel{Current: newCurrent, Capacity: f.Capacity}, newCurrent - f.Current
}

// Percentage returns fuel as percentage of capacity
func (f Fuel) Percentage() float64 {
	if f.Capacity == 0 {
		return 0.0
	}
	return f.Current / f.Capacity * 100.0
}

// IsFull checks if fuel is at capacity
func (f Fuel) IsFull() bool {
	return f.Current == f.Capacity
}

// IsEmpty checks if the tank is exhausted
func (f Fuel) IsEmpty() bool {
	return f.Current == 0
}

func (f Fuel) String() string {
	return fmt.Sprintf("Fuel(%.1f/%.1f)", f.Current, f.Capacity)
}
