// Package contacts implements the emergency contact book: an ordered,
// persisted list addressed by position.
package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"safeline/internal/common"
	"safeline/internal/models"
	"safeline/internal/storage"
)

// defaultContacts is the list seeded the first time the book is opened,
// before the user has stored anything.
var defaultContacts = []models.Contact{
	{Name: "Police", Number: "100"},
	{Name: "Ambulance", Number: "102"},
	{Name: "Fire", Number: "101"},
	{Name: "Women Safety", Number: "1091"},
}

// Book is the contact list. Entries keep insertion order; duplicates are
// allowed. Name and number are validated to be non-empty on add and edit,
// never retroactively.
type Book struct {
	kv storage.KV
}

// NewBook returns a contact book backed by the given KV.
func NewBook(kv storage.KV) *Book {
	return &Book{kv: kv}
}

func (b *Book) load(ctx context.Context) ([]models.Contact, error) {
	data, err := b.kv.Get(ctx, storage.KeyEmergencyContacts)
	if err != nil {
		return nil, err
	}
	if data == nil {
		// first run: seed the well-known emergency numbers
		seeded := make([]models.Contact, len(defaultContacts))
		for i, c := range defaultContacts {
			seeded[i] = models.NewContact(c.Name, c.Number)
		}
		if err := b.save(ctx, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	var list []models.Contact
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return list, nil
}

func (b *Book) save(ctx context.Context, list []models.Contact) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	return b.kv.Set(ctx, storage.KeyEmergencyContacts, data)
}

// List returns all contacts in insertion order.
func (b *Book) List(ctx context.Context) ([]models.Contact, error) {
	return b.load(ctx)
}

// Get returns the contact at index, or common.ErrIndexOutOfRange.
func (b *Book) Get(ctx context.Context, index int) (*models.Contact, error) {
	list, err := b.load(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return nil, common.ErrIndexOutOfRange
	}
	c := list[index]
	return &c, nil
}

// Add appends a contact and persists the list. Empty name or number yields
// common.ErrValidation.
func (b *Book) Add(ctx context.Context, name, number string) error {
	if name == "" || number == "" {
		return fmt.Errorf("%w: name and number are required", common.ErrValidation)
	}
	list, err := b.load(ctx)
	if err != nil {
		return err
	}
	list = append(list, models.NewContact(name, number))
	return b.save(ctx, list)
}

// Edit replaces the contact at index in place, keeping its ID and position.
// Fails with common.ErrIndexOutOfRange or common.ErrValidation without
// touching the list.
func (b *Book) Edit(ctx context.Context, index int, name, number string) error {
	if name == "" || number == "" {
		return fmt.Errorf("%w: name and number are required", common.ErrValidation)
	}
	list, err := b.load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(list) {
		return common.ErrIndexOutOfRange
	}
	list[index].Name = name
	list[index].Number = number
	return b.save(ctx, list)
}

// Remove deletes the contact at index and persists the list. Confirmation is
// the caller's concern. Fails with common.ErrIndexOutOfRange.
func (b *Book) Remove(ctx context.Context, index int) error {
	list, err := b.load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(list) {
		return common.ErrIndexOutOfRange
	}
	list = append(list[:index], list[index+1:]...)
	return b.save(ctx, list)
}

// Search returns the contacts whose name contains query case-insensitively,
// or whose number contains query verbatim. The underlying list is not
// mutated; an empty query matches everything.
func (b *Book) Search(ctx context.Context, query string) ([]models.Contact, error) {
	list, err := b.load(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var result []models.Contact
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Number, query) {
			result = append(result, c)
		}
	}
	return result, nil
}
