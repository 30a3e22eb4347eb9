// Package dashboard composes the session, the contact book, and the device
// signal state into the views the user interacts with, and dispatches
// outbound call and SMS intents.
package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"safeline/internal/contacts"
	"safeline/internal/intents"
	"safeline/internal/logging"
	"safeline/internal/models"
	"safeline/internal/session"
	"safeline/internal/signals"
	"safeline/internal/storage"
)

const (
	// DefaultFallThreshold is the acceleration magnitude above which a fall
	// is assumed. The comparison is strict: a magnitude of exactly the
	// threshold does not trigger.
	DefaultFallThreshold = 30.0

	// DefaultSMSDelay is the pause between the call and the SMS of the
	// combined action, giving the dialer time to take focus.
	DefaultSMSDelay = 500 * time.Millisecond
)

// afterFunc is a test seam for the call-then-SMS timer.
var afterFunc = time.AfterFunc

// Options configures a Controller. Sessions, Book, KV, Dispatcher, and Log
// are required; the rest default as documented.
type Options struct {
	Sessions   *session.Manager
	Book       *contacts.Book
	KV         storage.KV
	Dispatcher intents.Dispatcher
	Log        logging.Logger

	// Notify surfaces emergency notices to the user. Defaults to logging.
	Notify func(msg string)

	// FallThreshold defaults to DefaultFallThreshold; SMSDelay to
	// DefaultSMSDelay.
	FallThreshold float64
	SMSDelay      time.Duration
}

// Controller is the single consumer of device-signal updates and the only
// writer of view state. All methods are intended to be called from one
// goroutine; the update queue serializes the device callbacks into it.
type Controller struct {
	sessions   *session.Manager
	book       *contacts.Book
	kv         storage.KV
	dispatcher intents.Dispatcher
	log        logging.Logger
	notify     func(msg string)

	fallThreshold float64
	smsDelay      time.Duration

	state    State
	theme    models.Theme
	location models.LocationSample
	battery  models.BatteryStatus
}

// New builds a Controller and loads the persisted theme.
func New(ctx context.Context, opts Options) (*Controller, error) {
	c := &Controller{
		sessions:      opts.Sessions,
		book:          opts.Book,
		kv:            opts.KV,
		dispatcher:    opts.Dispatcher,
		log:           opts.Log,
		notify:        opts.Notify,
		fallThreshold: opts.FallThreshold,
		smsDelay:      opts.SMSDelay,
		state:         Start(),
		theme:         models.ThemeLight,
	}
	if c.fallThreshold == 0 {
		c.fallThreshold = DefaultFallThreshold
	}
	if c.smsDelay == 0 {
		c.smsDelay = DefaultSMSDelay
	}
	if c.notify == nil {
		c.notify = func(msg string) {
			c.log.Warn(context.Background(), msg)
		}
	}

	data, err := c.kv.Get(ctx, storage.KeyTheme)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			c.theme = models.ParseTheme(s)
		}
	}

	return c, nil
}

// State returns the current navigation state.
func (c *Controller) State() State {
	return c.state
}

// User returns the logged-in user, or nil.
func (c *Controller) User() *models.UserRecord {
	return c.sessions.Current()
}

// Contacts exposes the contact book.
func (c *Controller) Contacts() *contacts.Book {
	return c.book
}

// Theme returns the active theme.
func (c *Controller) Theme() models.Theme {
	return c.theme
}

// Location returns the most recent position fix.
func (c *Controller) Location() models.LocationSample {
	return c.location
}

// Battery returns the most recent battery reading.
func (c *Controller) Battery() models.BatteryStatus {
	return c.battery
}

// StartUp restores a persisted session and leaves the splash state.
func (c *Controller) StartUp(ctx context.Context) error {
	rec, err := c.sessions.Restore(ctx)
	if err != nil {
		return err
	}
	c.state = c.state.SessionRestored(rec != nil)
	return nil
}

// SwitchToRegister and SwitchToLogin flip between the two auth forms.
func (c *Controller) SwitchToRegister() { c.state = c.state.GoRegister() }
func (c *Controller) SwitchToLogin()    { c.state = c.state.GoLogin() }

// Login authenticates and, on success, enters the dashboard.
func (c *Controller) Login(ctx context.Context, username string, password []byte) error {
	if _, err := c.sessions.Login(ctx, username, password); err != nil {
		return err
	}
	c.state = c.state.LoggedIn()
	return nil
}

// Register creates the account, logs the user in, and enters the dashboard.
func (c *Controller) Register(ctx context.Context, rec models.UserRecord, password []byte) error {
	if _, err := c.sessions.Register(ctx, rec, password); err != nil {
		return err
	}
	c.state = c.state.LoggedIn()
	return nil
}

// Logout clears the session and returns to the login screen.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return err
	}
	c.state = c.state.LoggedOut()
	return nil
}

// ToggleTheme flips the theme and persists the new value.
func (c *Controller) ToggleTheme(ctx context.Context) (models.Theme, error) {
	next := c.theme.Toggled()
	data, err := json.Marshal(string(next))
	if err != nil {
		return c.theme, err
	}
	if err := c.kv.Set(ctx, storage.KeyTheme, data); err != nil {
		return c.theme, err
	}
	c.theme = next
	return next, nil
}

// Run consumes the signal queue until ctx is cancelled. It is the single
// consumer; every update is processed to completion before the next.
func (c *Controller) Run(ctx context.Context, updates <-chan signals.Update) {
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return
			}
			c.Apply(ctx, u)
		case <-ctx.Done():
			return
		}
	}
}

// Apply processes one device-signal update.
func (c *Controller) Apply(ctx context.Context, u signals.Update) {
	switch v := u.(type) {
	case signals.LocationUpdate:
		c.location = v.Sample
	case signals.BatteryUpdate:
		c.battery = v.Status
	case signals.MotionUpdate:
		c.handleMotion(ctx, v.Sample)
	}
}

// handleMotion runs the fall heuristic: a magnitude strictly above the
// threshold while a session is active raises the notice and calls the
// registered emergency number. There is deliberately no cooldown; sustained
// high acceleration triggers repeatedly, as the heuristic has no way to tell
// one fall from the next.
func (c *Controller) handleMotion(ctx context.Context, s models.MotionSample) {
	if signals.Magnitude(s) <= c.fallThreshold {
		return
	}
	user := c.sessions.Current()
	if user == nil {
		return
	}
	c.notify("Fall detected! Calling emergency number...")
	c.log.Info(ctx, "fall detected", "magnitude", signals.Magnitude(s), "number", user.EmergencyNumber)
	c.dispatcher.Dispatch(ctx, intents.Tel(user.EmergencyNumber))
}
