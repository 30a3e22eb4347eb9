package cli

import (
	"context"
	"fmt"
	"time"

	"safeline/internal/dashboard"
	"safeline/internal/intents"
)

// nowFn is a test seam for the greeting clock.
var nowFn = time.Now

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	return true
}

// Home prints the dashboard overview: greeting, location, battery.
func (a *App) Home(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	user := a.controller.User()
	loc := a.controller.Location()
	bat := a.controller.Battery()

	printlnFn(fmt.Sprintf("%s, %s", dashboard.Greeting(nowFn()), user.Username))
	printlnFn(fmt.Sprintf("Latitude: %s", loc.LatitudeString()))
	printlnFn(fmt.Sprintf("Longitude: %s", loc.LongitudeString()))
	printlnFn(fmt.Sprintf("Accuracy: %s m", loc.AccuracyString()))
	printlnFn(fmt.Sprintf("Map: %s", intents.MapURL(loc.LatitudeString(), loc.LongitudeString())))
	printlnFn(fmt.Sprintf("Battery Level: %s", bat.LevelString()))
	printlnFn(fmt.Sprintf("Status: %s", bat.ChargingString()))
	return nil
}

// Profile prints the logged-in user's record.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	user := a.controller.User()
	printlnFn("Name:", user.Username)
	printlnFn("Email:", user.Email)
	printlnFn("Emergency Number:", user.EmergencyNumber)
	return nil
}

// CallCmd calls the given number, defaulting to the user's own emergency
// number, as the quick-action button does.
func (a *App) CallCmd(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	number := a.controller.User().EmergencyNumber
	if len(args) > 0 {
		number = args[0]
	}
	a.controller.Call(ctx, number)
	return nil
}

// SMSCmd sends the emergency SMS with the current location.
func (a *App) SMSCmd(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	number := a.controller.User().EmergencyNumber
	if len(args) > 0 {
		number = args[0]
	}
	a.controller.SMS(ctx, number)
	return nil
}

// MapCmd opens the external map viewer at the current position.
func (a *App) MapCmd(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.controller.OpenMap(ctx)
	return nil
}

// ShareCmd shares the current position over a recipient-less SMS.
func (a *App) ShareCmd(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.controller.ShareLocation(ctx)
	return nil
}

// PanicCmd is the emergency call trigger.
func (a *App) PanicCmd(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.controller.Panic(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	return nil
}

// ThemeCmd toggles the theme. The toggle lives on the dashboard header, so
// it is only available while logged in.
func (a *App) ThemeCmd(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	theme, err := a.controller.ToggleTheme(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Theme:", string(theme))
	return nil
}
