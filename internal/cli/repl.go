package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	Profile(ctx context.Context) error
	CallCmd(ctx context.Context, args []string) error
	SMSCmd(ctx context.Context, args []string) error
	MapCmd(ctx context.Context) error
	ShareCmd(ctx context.Context) error
	PanicCmd(ctx context.Context) error
	ThemeCmd(ctx context.Context) error
	ListContacts(ctx context.Context) error
	SearchContacts(ctx context.Context, args []string) error
	AddContact(ctx context.Context) error
	EditContact(ctx context.Context, args []string) error
	DeleteContact(ctx context.Context, args []string) error
	CallAndSMSContact(ctx context.Context, args []string) error
}

// runREPL is the command loop of the safety dashboard.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - home           — location, battery, and quick-action overview
//	  - call [number]  — call a number (default: your emergency number)
//	  - sms [number]   — send the emergency SMS
//	  - map            — open the current position in the map viewer
//	  - share          — share the current position over SMS
//	  - panic          — immediate emergency call
//	  - contacts       — list emergency contacts
//	  - search <q>     — search contacts
//	  - add            — add a contact
//	  - edit <n>       — edit contact n
//	  - delete <n>     — delete contact n (asks for confirmation)
//	  - callsms <n>    — call contact n, then SMS after a short delay
//	  - theme          — toggle light/dark theme
//	  - profile        — show the logged-in user
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, beforeCmd func()) {
	for {
		printlnFn(fmt.Sprintf("safeline %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		if beforeCmd != nil {
			beforeCmd()
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, call, sms, map, share, panic, contacts, search, add, edit, delete, callsms, theme, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "home":
			_ = a.Home(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "call":
			_ = a.CallCmd(ctx, args)

		case "sms":
			_ = a.SMSCmd(ctx, args)

		case "map":
			_ = a.MapCmd(ctx)

		case "share":
			_ = a.ShareCmd(ctx)

		case "panic":
			_ = a.PanicCmd(ctx)

		case "theme":
			_ = a.ThemeCmd(ctx)

		case "c", "contacts":
			_ = a.ListContacts(ctx)

		case "search":
			_ = a.SearchContacts(ctx, args)

		case "add":
			_ = a.AddContact(ctx)

		case "edit":
			_ = a.EditContact(ctx, args)

		case "delete":
			_ = a.DeleteContact(ctx, args)

		case "callsms":
			_ = a.CallAndSMSContact(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	if user := a.controller.User(); user != nil {
		return fmt.Sprintf("(%s, %s)", user.Username, a.controller.Theme())
	}
	return fmt.Sprintf("(%s)", a.controller.State())
}

func (a *App) repl(ctx context.Context) {
	printlnFn("Welcome to the Safeline dashboard (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, func() { a.drainSignals(ctx) })
}
