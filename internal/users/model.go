package users

import "time"

// User is a registered identity. Records are created once and never
// updated; the password is kept exactly as entered.
type User struct {
	Name      string
	Surname   string
	IDNumber  string
	Phone     string
	UserName  string
	Password  string
	CreatedAt time.Time
}
