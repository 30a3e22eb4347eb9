package models

import "strconv"

// UnknownPlaceholder is displayed for signal values that have never been
// reported, matching the dashes the dashboard renders before the first
// device callback.
const UnknownPlaceholder = "-"

// LocationSample is the most recent position fix. Known is false until the
// first watcher callback; the sample is overwritten on every update and
// never persisted.
type LocationSample struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	Known     bool
}

// LatitudeString renders the latitude, or "-" if no fix was received yet.
func (l LocationSample) LatitudeString() string {
	if !l.Known {
		return UnknownPlaceholder
	}
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64)
}

// LongitudeString renders the longitude, or "-" if no fix was received yet.
func (l LocationSample) LongitudeString() string {
	if !l.Known {
		return UnknownPlaceholder
	}
	return strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}

// AccuracyString renders the fix accuracy in meters, or "-".
func (l LocationSample) AccuracyString() string {
	if !l.Known {
		return UnknownPlaceholder
	}
	return strconv.FormatFloat(l.Accuracy, 'f', -1, 64)
}

// BatteryStatus is the most recent battery reading. Known stays false
// permanently if the battery interface is unavailable.
type BatteryStatus struct {
	LevelPercent int
	Charging     bool
	Known        bool
}

// LevelString renders the level as "85%", or "-" when unknown.
func (b BatteryStatus) LevelString() string {
	if !b.Known {
		return UnknownPlaceholder
	}
	return strconv.Itoa(b.LevelPercent) + "%"
}

// ChargingString renders the charging state, or "-" when unknown.
func (b BatteryStatus) ChargingString() string {
	if !b.Known {
		return UnknownPlaceholder
	}
	if b.Charging {
		return "Charging"
	}
	return "Not Charging"
}

// MotionSample is a single device-acceleration reading, including gravity.
type MotionSample struct {
	X, Y, Z float64
}
