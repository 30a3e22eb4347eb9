package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func parseIndex(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("contact number required")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("not a contact number: %s", args[0])
	}
	// contacts are displayed 1-based
	return n - 1, nil
}

// ListContacts prints the contact book in insertion order.
func (a *App) ListContacts(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	list, err := a.controller.Contacts().List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for i, c := range list {
		printlnFn(fmt.Sprintf("%d. %s - %s", i+1, c.Name, c.Number))
	}
	return nil
}

// SearchContacts prints contacts matching the query.
func (a *App) SearchContacts(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	query := strings.Join(args, " ")
	found, err := a.controller.Contacts().Search(ctx, query)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(found) == 0 {
		printlnFn("No contacts found")
		return nil
	}
	for _, c := range found {
		printlnFn(fmt.Sprintf("%s - %s", c.Name, c.Number))
	}
	return nil
}

// AddContact collects name and number, then appends the contact.
func (a *App) AddContact(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	name, err := getSimpleText(a.reader, "Enter Contact Name", os.Stdout)
	if err != nil {
		return err
	}
	number, err := getSimpleText(a.reader, "Enter Contact Number", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.controller.Contacts().Add(ctx, name, number); err != nil {
		printlnFn("Name and Number are required!")
		return err
	}
	return nil
}

// EditContact replaces the contact at the given display position.
func (a *App) EditContact(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	index, err := parseIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	name, err := getSimpleText(a.reader, "Edit Name", os.Stdout)
	if err != nil {
		return err
	}
	number, err := getSimpleText(a.reader, "Edit Number", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.controller.Contacts().Edit(ctx, index, name, number); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	return nil
}

// DeleteContact removes the contact at the given display position after an
// explicit confirmation.
func (a *App) DeleteContact(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	index, err := parseIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	ok, err := GetConfirmation(a.reader, "Are you sure you want to delete this contact?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.controller.Contacts().Remove(ctx, index); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	return nil
}

// CallAndSMSContact runs the combined call-then-SMS action against the
// contact at the given display position.
func (a *App) CallAndSMSContact(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	index, err := parseIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	contact, err := a.controller.Contacts().Get(ctx, index)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	a.controller.CallAndSMS(ctx, contact.Number)
	return nil
}
