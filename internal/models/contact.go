package models

import "github.com/google/uuid"

// Contact is a single emergency contact. Duplicates are allowed; the ID only
// distinguishes records, list position is what callers address them by.
type Contact struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// NewContact returns a Contact with a fresh ID.
func NewContact(name, number string) Contact {
	return Contact{ID: uuid.NewString(), Name: name, Number: number}
}
