package cli

import (
	"context"
	"os"

	"safeline/internal/common"
	"safeline/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. An invalid combination is
// reported to the user and leaves the session untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.controller.Login(ctx, username, password); err != nil {
		printlnFn("Invalid Login. Please Register first.")
		return err
	}

	printlnFn("Welcome back,", username)
	return nil
}

// Register collects the registration form field by field, creates the
// account, and logs the new user in immediately.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	number, err := getSimpleText(a.reader, "Emergency number", os.Stdout)
	if err != nil {
		return err
	}
	var gender models.Gender
	for {
		answer, err := getSimpleText(a.reader, "Gender (male/female)", os.Stdout)
		if err != nil {
			return err
		}
		gender, err = models.ParseGender(answer)
		if err == nil {
			break
		}
		printlnFn("Please enter 'male' or 'female'")
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rec := models.UserRecord{
		Username:        username,
		Email:           email,
		EmergencyNumber: number,
		Gender:          gender,
	}

	if err := a.controller.Register(ctx, rec, password); err != nil {
		printlnFn("User already exists")
		return err
	}

	printlnFn("Success!")
	return nil
}

// Logout clears the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.controller.Logout(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}
