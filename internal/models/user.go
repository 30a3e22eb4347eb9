// Package models defines the persisted and in-memory data types of the
// application: user records, contacts, device signal samples, and the theme.
package models

import (
	"fmt"
	"strings"

	"safeline/internal/common"
)

// Gender of a registered user.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender maps user input onto a Gender. Unlike themes there is no safe
// fallback, so anything else is rejected.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: gender must be male or female", common.ErrValidation)
	}
}

// UserRecord is a registered user. Records are created at registration and
// never modified afterwards; the username is the unique key in the
// credential store.
//
// PasswordHash holds a bcrypt hash, never the plaintext password.
type UserRecord struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	EmergencyNumber string `json:"number"`
	PasswordHash    string `json:"password"`
	Gender          Gender `json:"gender"`
}
