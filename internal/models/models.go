package models

import (
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var (
	ErrFirstNameRequired = errors.New("first name is required")
	ErrPhoneRequired     = errors.New("phone number is required")
)

// Contact — карточка контакта, как её отдаёт сервер.
type Contact struct {
	ID          string
	FirstName   string
	LastName    string
	PhoneNumber string
	PhotoURI    string
}

// NewContact returns a contact with a placeholder id. The id is only
// valid until the first successful create call, after which the
// server-assigned one replaces it.
func NewContact(firstName, lastName, phoneNumber string) Contact {
	return Contact{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
	}
}

func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Initials returns the uppercased first letters of the first and last
// name, "?" when both are blank.
func (c Contact) Initials() string {
	var b strings.Builder

	if r := firstLetter(c.FirstName); r != 0 {
		b.WriteRune(unicode.ToUpper(r))
	}
	if r := firstLetter(c.LastName); r != 0 {
		b.WriteRune(unicode.ToUpper(r))
	}

	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// DisplayLetter returns the letter the contact is grouped under in a
// sectioned list: first name first, then last name, then '#'.
func (c Contact) DisplayLetter() rune {
	if r := firstLetter(c.FirstName); r != 0 {
		return unicode.ToUpper(r)
	}
	if r := firstLetter(c.LastName); r != 0 {
		return unicode.ToUpper(r)
	}
	return '#'
}

// Validate checks the mandatory fields: first name and phone number
// must be non-blank. Last name and photo are optional.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(c.PhoneNumber) == "" {
		return ErrPhoneRequired
	}
	return nil
}

// ValidName reports whether the name consists of letters, spaces,
// hyphens and apostrophes only.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

// ValidPhoneNumber reports whether the number contains at least
// minDigits digits.
func ValidPhoneNumber(phoneNumber string, minDigits int) bool {
	var digits int
	for _, r := range phoneNumber {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= minDigits
}

func firstLetter(s string) rune {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		return r
	}
	return 0
}
