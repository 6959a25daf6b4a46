package navigation

import "github.com/orbitalworks/shipnav/internal/domain/shared"

// Track is a bounded log of positions the ship has occupied.
// Once the limit is reached the oldest entry is dropped on each append.
type Track struct {
	points []shared.Vector3
	limit  int
}

// NewTrack creates an empty track holding at most limit points
func NewTrack(limit int) *Track {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Track{
		points: make([]shared.Vector3, 0, limit),
		limit:  limit,
	}
}

// Record appends a position, evicting the oldest once past the limit
func (t *Track) Record(p shared.Vector3) {
	t.points = append(t.points, p)
	if len(t.points) > t.limit {
		t.points = t.points[1:]
	}
}

// Len returns the number of recorded positions
func (t *Track) Len() int {
	return len(t.points)
}

// Limit returns the maximum number of retained positions
func (t *Track) Limit() int {
	return t.limit
}

// Points returns a copy of the recorded positions, oldest first
func (t *Track) Points() []shared.Vector3 {
	points := make([]shared.Vector3, len(t.points))
	copy(points, t.points)
	return points
}

// Last returns the most recently recorded position
func (t *Track) Last() (shared.Vector3, bool) {
	if len(t.points) == 0 {
		return shared.Vector3{}, false
	}
	return t.points[len(t.points)-1], true
}
