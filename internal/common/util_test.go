package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("Secret1!")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- Notice ----------

func TestNotice(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"id number", ErrInvalidIDNumber, "ID number must be 13 digits."},
		{"phone", ErrInvalidPhoneNumber, "Invalid phone number."},
		{"password", ErrInvalidPassword, "Invalid password."},
		{"duplicate", ErrorAlreadyExists, "Username already exists."},
		{"wrapped duplicate", fmt.Errorf("create user: %w", ErrorAlreadyExists), "Username already exists."},
		{"no messages", fmt.Errorf("%w: %s", ErrNoMessagesFound, "Hello"), "No messages found containing: Hello"},
		{"unknown", errors.New("disk on fire"), "disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Notice(tt.err))
		})
	}
}
