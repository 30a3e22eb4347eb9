package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// execStub records which commands the REPL dispatched.
type execStub struct {
	loggedIn bool
	calls    []string
}

func (s *execStub) record(name string, args []string) {
	if len(args) > 0 {
		name = name + " " + strings.Join(args, " ")
	}
	s.calls = append(s.calls, name)
}

func (s *execStub) isLoggedIn() bool { return s.loggedIn }

func (s *execStub) Login(ctx context.Context) error    { s.record("login", nil); return nil }
func (s *execStub) Register(ctx context.Context) error { s.record("register", nil); return nil }
func (s *execStub) Logout(ctx context.Context) error   { s.record("logout", nil); return nil }
func (s *execStub) Home(ctx context.Context) error     { s.record("home", nil); return nil }
func (s *execStub) Profile(ctx context.Context) error  { s.record("profile", nil); return nil }
func (s *execStub) CallCmd(ctx context.Context, args []string) error {
	s.record("call", args)
	return nil
}
func (s *execStub) SMSCmd(ctx context.Context, args []string) error {
	s.record("sms", args)
	return nil
}
func (s *execStub) MapCmd(ctx context.Context) error      { s.record("map", nil); return nil }
func (s *execStub) ShareCmd(ctx context.Context) error    { s.record("share", nil); return nil }
func (s *execStub) PanicCmd(ctx context.Context) error    { s.record("panic", nil); return nil }
func (s *execStub) ThemeCmd(ctx context.Context) error    { s.record("theme", nil); return nil }
func (s *execStub) ListContacts(ctx context.Context) error { s.record("contacts", nil); return nil }
func (s *execStub) SearchContacts(ctx context.Context, args []string) error {
	s.record("search", args)
	return nil
}
func (s *execStub) AddContact(ctx context.Context) error { s.record("add", nil); return nil }
func (s *execStub) EditContact(ctx context.Context, args []string) error {
	s.record("edit", args)
	return nil
}
func (s *execStub) DeleteContact(ctx context.Context, args []string) error {
	s.record("delete", args)
	return nil
}
func (s *execStub) CallAndSMSContact(ctx context.Context, args []string) error {
	s.record("callsms", args)
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	old := printlnFn
	var lines []string
	printlnFn = func(args ...any) { lines = append(lines, fmt.Sprintln(args...)) }
	t.Cleanup(func() { printlnFn = old })
	return &lines
}

func runScript(t *testing.T, a *execStub, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string { return "(test)" }, scanner, nil)
	return *lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	stub := &execStub{loggedIn: true}
	runScript(t, stub, strings.Join([]string{
		"home",
		"call 555",
		"sms",
		"map",
		"share",
		"panic",
		"theme",
		"contacts",
		"search mom",
		"add",
		"edit 2",
		"delete 1",
		"callsms 3",
		"profile",
		"logout",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"home", "call 555", "sms", "map", "share", "panic", "theme",
		"contacts", "search mom", "add", "edit 2", "delete 1", "callsms 3",
		"profile", "logout",
	}, stub.calls)
}

func TestREPL_ContactsShorthand(t *testing.T) {
	stub := &execStub{loggedIn: true}
	runScript(t, stub, "c\nexit")
	assert.Equal(t, []string{"contacts"}, stub.calls)
}

func TestREPL_HelpLoggedOut(t *testing.T) {
	stub := &execStub{}
	lines := runScript(t, stub, "help\nexit")

	joined := strings.Join(lines, "")
	assert.Contains(t, joined, "register, login, exit")
	assert.NotContains(t, joined, "panic")
}

func TestREPL_HelpLoggedIn(t *testing.T) {
	stub := &execStub{loggedIn: true}
	lines := runScript(t, stub, "help\nexit")

	joined := strings.Join(lines, "")
	assert.Contains(t, joined, "panic")
	assert.Contains(t, joined, "callsms")
}

func TestREPL_UnknownCommand(t *testing.T) {
	stub := &execStub{}
	lines := runScript(t, stub, "fly\nexit")

	joined := strings.Join(lines, "")
	assert.Contains(t, joined, "Unknown command: fly")
	assert.Empty(t, stub.calls)
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	stub := &execStub{}
	runScript(t, stub, "\n   \nexit")
	assert.Empty(t, stub.calls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	stub := &execStub{}
	runScript(t, stub, "login")
	assert.Equal(t, []string{"login"}, stub.calls)
}

func TestREPL_QuitAlias(t *testing.T) {
	stub := &execStub{}
	lines := runScript(t, stub, "quit")
	assert.Contains(t, strings.Join(lines, ""), "Bye!")
}

func TestREPL_BeforeCmdHookRuns(t *testing.T) {
	stub := &execStub{}
	lines := captureOutput(t)
	_ = lines

	var hooks int
	scanner := bufio.NewScanner(strings.NewReader("login\nexit"))
	runREPL(context.Background(), stub, func() string { return "" }, scanner, func() { hooks++ })

	assert.Equal(t, 2, hooks)
}
