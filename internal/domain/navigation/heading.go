package navigation

import (
	"fmt"
	"math"

	"github.com/orbitalworks/shipnav/internal/domain/shared"
)

// Heading is a direction expressed as azimuth (angle in the XY plane from
// the positive X axis) and elevation (angle from the XY plane toward Z),
// both in radians.
type Heading struct {
	Azimuth   float64 `json:"azimuth"`
	Elevation float64 `json:"elevation"`
}

// HeadingBetween computes the heading from one point toward another.
// Identical points yield a zero heading.
func HeadingBetween(from, to shared.Vector3) Heading {
	delta := to.Sub(from)
	azimuth := math.Atan2(delta.Y, delta.X)

	xyDistance := math.Sqrt(delta.X*delta.X + delta.Y*delta.Y)
	elevation := 0.0
	if xyDistance != 0 || delta.Z != 0 {
		elevation = math.Atan2(delta.Z, xyDistance)
	}

	return Heading{Azimuth: azimuth, Elevation: elevation}
}

// Degrees returns azimuth and elevation converted to degrees
func (h Heading) Degrees() (azimuth, elevation float64) {
	return h.Azimuth * 180 / math.Pi, h.Elevation * 180 / math.Pi
}

func (h Heading) String() string {
	azimuth, elevation := h.Degrees()
	return fmt.Sprintf("az %.1f° el %.1f°", azimuth, elevation)
}
