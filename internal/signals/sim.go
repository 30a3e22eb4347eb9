package signals

import (
	"context"
	"math/rand"
	"time"

	"safeline/internal/models"
)

// Simulated providers stand in for the browser device interfaces when the
// binary runs on a machine without GPS, battery, or accelerometer access.
// They produce plausible readings on a fixed tick so the dashboard behaves
// exactly as it would with real hardware.

// SimulatedPosition drifts around a base coordinate.
type SimulatedPosition struct {
	Interval  time.Duration
	Latitude  float64
	Longitude float64
}

func (p *SimulatedPosition) WatchPosition(ctx context.Context) (<-chan models.LocationSample, error) {
	out := make(chan models.LocationSample)
	go func() {
		defer close(out)
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		lat, lng := p.Latitude, p.Longitude
		for {
			select {
			case <-ticker.C:
				lat += (rand.Float64() - 0.5) * 0.0002
				lng += (rand.Float64() - 0.5) * 0.0002
				sample := models.LocationSample{
					Latitude:  lat,
					Longitude: lng,
					Accuracy:  5 + rand.Float64()*20,
					Known:     true,
				}
				select {
				case out <- sample:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// SimulatedBattery drains one percent per tick and recharges from 5%.
type SimulatedBattery struct {
	Interval time.Duration
}

func (p *SimulatedBattery) WatchBattery(ctx context.Context) (<-chan models.BatteryStatus, error) {
	out := make(chan models.BatteryStatus)
	go func() {
		defer close(out)

		status := models.BatteryStatus{LevelPercent: 100, Charging: false, Known: true}

		// report the current status once before the first change,
		// mirroring the one-shot query the battery interface answers
		select {
		case out <- status:
		case <-ctx.Done():
			return
		}

		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if status.Charging {
					status.LevelPercent++
					if status.LevelPercent >= 100 {
						status.LevelPercent = 100
						status.Charging = false
					}
				} else {
					status.LevelPercent--
					if status.LevelPercent <= 5 {
						status.Charging = true
					}
				}
				select {
				case out <- status:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// SimulatedMotion emits resting-device samples: gravity on one axis with a
// little jitter. It never crosses the fall threshold on its own.
type SimulatedMotion struct {
	Interval time.Duration
}

func (p *SimulatedMotion) WatchMotion(ctx context.Context) (<-chan models.MotionSample, error) {
	out := make(chan models.MotionSample)
	go func() {
		defer close(out)
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sample := models.MotionSample{
					X: (rand.Float64() - 0.5) * 0.4,
					Y: (rand.Float64() - 0.5) * 0.4,
					Z: 9.81 + (rand.Float64()-0.5)*0.4,
				}
				select {
				case out <- sample:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
