// Package signals implements the passive device-signal collectors: location,
// battery, and motion. Each collector subscribes to a provider stream and
// forwards typed updates onto a single queue, consumed serially by the
// dashboard. Collectors never surface errors to the user: a missing or
// failing provider just leaves the corresponding state at its unknown value.
package signals

import (
	"math"

	"safeline/internal/models"
)

// Update is a single typed message produced by a collector.
type Update interface {
	isUpdate()
}

// LocationUpdate carries a new position fix, overwriting the previous one.
type LocationUpdate struct {
	Sample models.LocationSample
}

// BatteryUpdate carries a new battery reading.
type BatteryUpdate struct {
	Status models.BatteryStatus
}

// MotionUpdate carries a device-acceleration sample, gravity included.
type MotionUpdate struct {
	Sample models.MotionSample
}

func (LocationUpdate) isUpdate() {}
func (BatteryUpdate) isUpdate()  {}
func (MotionUpdate) isUpdate()   {}

// Magnitude returns the Euclidean magnitude of the three acceleration axes.
func Magnitude(s models.MotionSample) float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}
