package signals

import (
	"context"

	"safeline/internal/models"
)

// PositionProvider is a continuous position stream. The returned channel is
// closed when ctx is cancelled or the stream ends.
type PositionProvider interface {
	WatchPosition(ctx context.Context) (<-chan models.LocationSample, error)
}

// BatteryProvider reports the current battery status first, then a reading
// on every level or charging change.
type BatteryProvider interface {
	WatchBattery(ctx context.Context) (<-chan models.BatteryStatus, error)
}

// MotionProvider is a stream of device-acceleration samples.
type MotionProvider interface {
	WatchMotion(ctx context.Context) (<-chan models.MotionSample, error)
}
