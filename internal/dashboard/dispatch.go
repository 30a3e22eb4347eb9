package dashboard

import (
	"context"
	"fmt"

	"safeline/internal/common"
	"safeline/internal/intents"
	"safeline/internal/models"
)

// Call issues a telephony intent to the given number. Fire-and-forget: once
// handed to the dispatcher there is no observable failure.
func (c *Controller) Call(ctx context.Context, number string) {
	c.dispatcher.Dispatch(ctx, intents.Tel(number))
}

// SMS issues an SMS intent to number with the emergency-alert body embedding
// the current location.
func (c *Controller) SMS(ctx context.Context, number string) {
	c.dispatcher.Dispatch(ctx, intents.SMS(number, emergencyBody(number, c.location)))
}

// ShareLocation issues a recipient-less SMS intent carrying only a map link.
func (c *Controller) ShareLocation(ctx context.Context) {
	link := intents.MapURL(c.location.LatitudeString(), c.location.LongitudeString())
	body := fmt.Sprintf("🚨 Emergency Alert!\n\nPlease help me.\nMy Location: %s", link)
	c.dispatcher.Dispatch(ctx, intents.SMS("", body))
}

// OpenMap issues an intent opening the external map viewer at the current
// position.
func (c *Controller) OpenMap(ctx context.Context) {
	c.dispatcher.Dispatch(ctx, intents.Intent{
		URI: intents.MapURL(c.location.LatitudeString(), c.location.LongitudeString()),
	})
}

// CallAndSMS calls the number immediately and sends the emergency SMS after
// a short delay so the dialer can take focus first. The follow-up is not
// cancellable once scheduled. The location is snapshotted here, on the loop
// goroutine; the timer closure must not touch controller state.
func (c *Controller) CallAndSMS(ctx context.Context, number string) {
	c.Call(ctx, number)
	loc := c.location
	afterFunc(c.smsDelay, func() {
		c.dispatcher.Dispatch(ctx, intents.SMS(number, emergencyBody(number, loc)))
	})
}

// Panic is the press-and-hold emergency action: an immediate call to the
// active user's registered emergency number. Returns common.ErrNoSession if
// nobody is logged in.
func (c *Controller) Panic(ctx context.Context) error {
	user := c.sessions.Current()
	if user == nil {
		return common.ErrNoSession
	}
	c.Call(ctx, user.EmergencyNumber)
	return nil
}

// emergencyBody renders the fixed emergency-alert SMS template.
func emergencyBody(number string, loc models.LocationSample) string {
	return fmt.Sprintf(`🚨 Emergency alert! Please help.
Location: Latitude %s, Longitude %s
Google Maps: %s
Contact Number: %s`,
		loc.LatitudeString(), loc.LongitudeString(),
		intents.MapURL(loc.LatitudeString(), loc.LongitudeString()),
		number)
}
