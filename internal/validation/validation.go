// Package validation implements the registration rules: a 13-digit ID
// number, a 10-digit phone number starting with 0 and a password policy.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophchat/internal/common"
)

const (
	idNumberLength    = 13
	phoneNumberLength = 10
	minPasswordLength = 8
	maxPasswordLength = 12

	// Specials is the set of punctuation a password must draw from.
	Specials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// Hints are the rule descriptions shown next to the form fields.
var Hints = struct {
	IDNumber, Phone, Password string
}{
	IDNumber: "13 digits",
	Phone:    "10 digits, starts with 0",
	Password: "8-12 chars, 1 uppercase, 1 digit, 1 special char",
}

// Registration carries the raw form values.
type Registration struct {
	Name     string
	Surname  string
	IDNumber string
	Phone    string
	UserName string
	Password string
}

// Normalize trims surrounding whitespace from every field except the
// password, which is taken exactly as typed.
func (r Registration) Normalize() Registration {
	return Registration{
		Name:     strings.TrimSpace(r.Name),
		Surname:  strings.TrimSpace(r.Surname),
		IDNumber: strings.TrimSpace(r.IDNumber),
		Phone:    strings.TrimSpace(r.Phone),
		UserName: strings.TrimSpace(r.UserName),
		Password: r.Password,
	}
}

// Validate checks the ID number, then the phone number, then the password,
// and returns the sentinel for the first rule that fails.
// Username uniqueness is the directory's concern.
func Validate(r Registration) error {
	if !IsValidIDNumber(r.IDNumber) {
		return common.ErrInvalidIDNumber
	}
	if !IsValidPhoneNumber(r.Phone) {
		return common.ErrInvalidPhoneNumber
	}
	if !IsValidPassword(r.Password) {
		return common.ErrInvalidPassword
	}
	return nil
}

func IsValidIDNumber(id string) bool {
	return len(id) == idNumberLength && allDigits(id)
}

func IsValidPhoneNumber(phone string) bool {
	return len(phone) == phoneNumberLength && phone[0] == '0' && allDigits(phone)
}

// IsValidPassword reports whether p is 8 to 12 characters long and holds at
// least one ASCII uppercase letter, one digit and one character from Specials.
func IsValidPassword(p string) bool {
	n := utf8.RuneCountInString(p)
	if n < minPasswordLength || n > maxPasswordLength {
		return false
	}

	var upper, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case isDigit(r):
			digit = true
		case strings.ContainsRune(Specials, r):
			special = true
		}
	}
	return upper && digit && special
}

func allDigits(s string) bool {
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
