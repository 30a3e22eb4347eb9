package signals

import (
	"context"

	"safeline/internal/logging"
	"safeline/internal/models"
)

// queueSize bounds the update queue. The consumer drains it synchronously,
// so a small buffer only smooths bursts from simultaneous callbacks.
const queueSize = 16

// Collectors owns the three background observers. A nil provider means the
// corresponding device interface is unavailable; its state simply never
// leaves the unknown sentinel.
type Collectors struct {
	position PositionProvider
	battery  BatteryProvider
	motion   MotionProvider
	log      logging.Logger
	queue    chan Update
}

// New returns a Collectors over the given providers. Any provider may be nil.
func New(position PositionProvider, battery BatteryProvider, motion MotionProvider, log logging.Logger) *Collectors {
	return &Collectors{
		position: position,
		battery:  battery,
		motion:   motion,
		log:      log,
		queue:    make(chan Update, queueSize),
	}
}

// Updates is the single-consumer queue the dashboard drains.
func (c *Collectors) Updates() <-chan Update {
	return c.queue
}

// Start attaches every available provider and begins forwarding updates.
// It returns immediately; forwarding stops when ctx is cancelled, which is
// the only way to detach the listeners.
func (c *Collectors) Start(ctx context.Context) {
	if c.position != nil {
		ch, err := c.position.WatchPosition(ctx)
		if err != nil {
			c.log.Warn(ctx, "geolocation unavailable", "error", err)
		} else {
			go forward(ctx, ch, c.queue, func(s models.LocationSample) Update {
				return LocationUpdate{Sample: s}
			})
		}
	} else {
		c.log.Debug(ctx, "no geolocation provider")
	}

	if c.battery != nil {
		ch, err := c.battery.WatchBattery(ctx)
		if err != nil {
			c.log.Warn(ctx, "battery interface unavailable", "error", err)
		} else {
			go forward(ctx, ch, c.queue, func(s models.BatteryStatus) Update {
				return BatteryUpdate{Status: s}
			})
		}
	} else {
		c.log.Debug(ctx, "no battery provider")
	}

	if c.motion != nil {
		ch, err := c.motion.WatchMotion(ctx)
		if err != nil {
			c.log.Warn(ctx, "motion sensor unavailable", "error", err)
		} else {
			go forward(ctx, ch, c.queue, func(s models.MotionSample) Update {
				return MotionUpdate{Sample: s}
			})
		}
	} else {
		c.log.Debug(ctx, "no motion provider")
	}
}

func forward[T any](ctx context.Context, in <-chan T, out chan<- Update, wrap func(T) Update) {
	for {
		select {
		case v, ok := <-in:
			if !ok {
				return
			}
			select {
			case out <- wrap(v):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
