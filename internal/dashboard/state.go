package dashboard

// State is the top-level navigation state. Transitions are expressed as
// typed methods returning the next state; an event that does not apply to
// the current state leaves it unchanged.
type State string

const (
	StateSplash    State = "splash"
	StateLogin     State = "login"
	StateRegister  State = "register"
	StateDashboard State = "dashboard"
)

// Start is the navigation state before session restore has run.
func Start() State {
	return StateSplash
}

// SessionRestored leaves the splash screen: to the dashboard when a
// persisted session was found, to the login screen otherwise.
func (s State) SessionRestored(found bool) State {
	if s != StateSplash {
		return s
	}
	if found {
		return StateDashboard
	}
	return StateLogin
}

// GoRegister switches from the login form to the registration form.
func (s State) GoRegister() State {
	if s != StateLogin {
		return s
	}
	return StateRegister
}

// GoLogin switches from the registration form back to the login form.
func (s State) GoLogin() State {
	if s != StateRegister {
		return s
	}
	return StateLogin
}

// LoggedIn enters the dashboard after a successful login or registration.
func (s State) LoggedIn() State {
	if s != StateLogin && s != StateRegister {
		return s
	}
	return StateDashboard
}

// LoggedOut returns to the login screen.
func (s State) LoggedOut() State {
	if s != StateDashboard {
		return s
	}
	return StateLogin
}
