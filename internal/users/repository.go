// Package users holds the user directory: the User record, the Repository
// abstraction with in-memory and SQLite implementations, and the
// registration Service that validates input before inserting.
package users

import (
	"context"
)

// Repository is the user directory. Create must reject a username that is
// already present with common.ErrorAlreadyExists and leave the stored
// record untouched.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByLogin(ctx context.Context, userName string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
