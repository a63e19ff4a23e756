package model

import "fmt"

// Role of a platform account. Admin accounts are seeded only; they cannot
// be self-registered.
type Role string

const (
	RoleLearner    Role = "Learner"
	RoleInstructor Role = "Instructor"
	RoleAdmin      Role = "Admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleLearner, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User represents a platform account
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
	// Theme is the account's UI preference, "light" or "dark". It is the
	// only preference the client persists across sessions.
	Theme string `json:"theme"`
	// PasswordHash is a bcrypt hash. Never serialized.
	PasswordHash []byte `json:"-"`
}

// AvatarURL derives the placeholder avatar for a user id.
func AvatarURL(id int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/100/100", id)
}
