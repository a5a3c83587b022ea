package common

import (
	"errors"
	"strings"
)

// notices maps sentinel errors to the exact wording the form and chat
// window display.
var notices = []struct {
	err  error
	text string
}{
	{ErrInvalidIDNumber, "ID number must be 13 digits."},
	{ErrInvalidPhoneNumber, "Invalid phone number."},
	{ErrInvalidPassword, "Invalid password."},
	{ErrorAlreadyExists, "Username already exists."},
}

// Notice returns the user-facing text for err.
//
// Known sentinels (also when wrapped) map to fixed messages. A wrapped
// ErrNoMessagesFound keeps its detail, so
// fmt.Errorf("%w: %s", ErrNoMessagesFound, "kw") becomes
// "No messages found containing: kw". Anything else falls back to err.Error().
func Notice(err error) string {
	if err == nil {
		return ""
	}

	for _, n := range notices {
		if errors.Is(err, n.err) {
			return n.text
		}
	}

	if errors.Is(err, ErrNoMessagesFound) {
		kw := strings.TrimPrefix(err.Error(), ErrNoMessagesFound.Error())
		kw = strings.TrimPrefix(kw, ": ")
		return "No messages found containing: " + kw
	}

	return err.Error()
}
