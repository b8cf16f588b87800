// Package devicebook defines the seams to the device's native address
// book and the matching logic used for "already in device contacts"
// badges. The platform side implements Reader and Writer; this package
// only compares normalized numbers.
package devicebook

import (
	"context"

	"bitbucket.org/sotavant/contacts-app/internal/models"
	"bitbucket.org/sotavant/contacts-app/internal/phone"
)

// Reader supplies the normalized phone numbers present in the device
// address book.
type Reader interface {
	PhoneNumbers(ctx context.Context) (map[string]struct{}, error)
}

// Writer exports a contact into the device address book. Fire and
// forget: the store does not track the result.
type Writer interface {
	Save(ctx context.Context, contact models.Contact) error
}

// NumberSet normalizes raw numbers into a lookup set, skipping blanks.
func NumberSet(raw []string) map[string]struct{} {
	set := make(map[string]struct{}, len(raw))
	for _, n := range raw {
		if normalized := phone.Normalize(n); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the number is in the set after
// normalization.
func Contains(set map[string]struct{}, phoneNumber string) bool {
	_, ok := set[phone.Normalize(phoneNumber)]
	return ok
}

// Badge maps contact id to whether the contact's number is already in
// the device address book.
func Badge(set map[string]struct{}, contacts []models.Contact) map[string]bool {
	badges := make(map[string]bool, len(contacts))
	for _, c := range contacts {
		badges[c.ID] = Contains(set, c.PhoneNumber)
	}
	return badges
}
