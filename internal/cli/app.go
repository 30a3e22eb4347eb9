// Package cli implements the interactive shell around the dashboard
// controller: a read–eval–print loop mirroring the screens of the original
// dashboard (login, register, home, contacts, profile).
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"safeline/internal/config"
	"safeline/internal/contacts"
	"safeline/internal/dashboard"
	"safeline/internal/intents"
	"safeline/internal/logging"
	"safeline/internal/session"
	"safeline/internal/signals"
	"safeline/internal/storage"
	"safeline/internal/users"

	_ "modernc.org/sqlite"
)

// App owns the controller, the signal collectors, and terminal I/O.
//
// It is deliberately single-threaded: device updates queue up in the
// collectors' channel and are drained between REPL commands, so every state
// mutation happens on the loop goroutine, one event at a time.
type App struct {
	config     *config.Config
	controller *dashboard.Controller
	collectors *signals.Collectors
	log        logging.Logger
	reader     *bufio.Reader
}

// NewApp wires storage, credential store, session, contact book, simulated
// signal providers, and the controller together.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	kv, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	collectors := signals.New(
		&signals.SimulatedPosition{Interval: cfg.SignalInterval, Latitude: 28.61, Longitude: 77.21},
		&signals.SimulatedBattery{Interval: cfg.SignalInterval},
		&signals.SimulatedMotion{Interval: cfg.SignalInterval},
		log,
	)

	controller, err := dashboard.New(ctx, dashboard.Options{
		Sessions:      session.NewManager(users.NewStore(kv), kv),
		Book:          contacts.NewBook(kv),
		KV:            kv,
		Dispatcher:    &intents.LogDispatcher{Log: log},
		Log:           log,
		Notify:        func(msg string) { printlnFn("🚨 " + msg) },
		FallThreshold: cfg.FallThreshold,
		SMSDelay:      cfg.SMSDelay,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		config:     cfg,
		controller: controller,
		collectors: collectors,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a persisted session, starts the collectors, and enters the
// REPL. It returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.controller.StartUp(ctx); err != nil {
		return err
	}

	a.collectors.Start(ctx)

	a.repl(ctx)
	return nil
}

// drainSignals applies every queued device update. Called between commands,
// it keeps the controller the single writer of view state.
func (a *App) drainSignals(ctx context.Context) {
	for {
		select {
		case u := <-a.collectors.Updates():
			a.controller.Apply(ctx, u)
		default:
			return
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.controller.User() != nil
}
