// Package intents builds and dispatches the outbound OS-level action URIs:
// telephony, SMS, and map links. Dispatching is fire-and-forget; there is no
// response channel and no observable failure.
package intents

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"safeline/internal/logging"
)

// Intent is a single outbound action, expressed as a URI.
type Intent struct {
	URI string
}

// Dispatcher hands an intent to whatever plays the role of the OS handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent Intent)
}

// Tel returns a telephony intent for the given number.
func Tel(number string) Intent {
	return Intent{URI: "tel:" + number}
}

// SMS returns an SMS intent pre-filled with body. An empty number produces a
// recipient-less intent ("sms:?body=...").
func SMS(number, body string) Intent {
	return Intent{URI: "sms:" + number + "?body=" + encodeBody(body)}
}

// MapURL returns an external map-viewer link for the given coordinates. The
// arguments are preformatted strings so unknown values render as the same
// "-" placeholder the dashboard shows.
func MapURL(lat, lng string) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s,%s", lat, lng)
}

// encodeBody percent-encodes an SMS body. QueryEscape uses '+' for spaces,
// which SMS handlers take literally, so spaces become %20 instead.
func encodeBody(body string) string {
	return strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
}

// LogDispatcher writes each intent to the logger. It is the default handler
// in environments with no telephony stack to hand the URI to.
type LogDispatcher struct {
	Log logging.Logger
}

func (d *LogDispatcher) Dispatch(ctx context.Context, intent Intent) {
	d.Log.Info(ctx, "dispatching intent", "uri", intent.URI)
}

// Recorder collects dispatched intents for inspection in tests. Dispatch is
// safe to call from timer goroutines; concurrent readers should use All.
type Recorder struct {
	mu      sync.Mutex
	Intents []Intent
}

func (r *Recorder) Dispatch(_ context.Context, intent Intent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Intents = append(r.Intents, intent)
}

// All returns a copy of the recorded intents.
func (r *Recorder) All() []Intent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Intent(nil), r.Intents...)
}
