// Package common defines sentinel errors shared by the registration, directory
// and chat layers of gophchat. Callers should use errors.Is to match these
// values and Notice to turn them into the text shown to the user.
package common

import "errors"

var (
	// Directory-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Registration validation errors, in the order the form checks them.
	ErrInvalidIDNumber    = errors.New("invalid id number")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrInvalidPassword    = errors.New("invalid password")

	// Search outcomes.
	ErrEmptyKeyword    = errors.New("empty keyword")
	ErrNoMessagesFound = errors.New("no messages found")
)
