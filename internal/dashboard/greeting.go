package dashboard

import "time"

// Greeting returns the time-of-day salutation shown on the dashboard header.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
