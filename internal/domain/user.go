package domain

import "fmt"

// User represents an authenticated user of the system.
type User struct {
	ID       int64
	Username string
	Email    string
}

// String renders the short form used in logs.
func (u User) String() string {
	return fmt.Sprintf("User(%s)", u.Username)
}
