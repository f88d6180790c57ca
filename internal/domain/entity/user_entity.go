package entity

import (
	"time"
)

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never plain text.
// Phone is optional and backs the OTP password-reset flow.
type User struct {
	ID        string
	UserName  string
	Email     string
	Password  string
	Phone     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Public returns the fields safe to expose over the API.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"user_name":  u.UserName,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}
