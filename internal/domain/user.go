package domain

import "time"

// Role enumerates account privilege levels.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether the role is a known value.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the domain model for platform accounts managed through the admin panel.
type User struct {
	ID           string
	UserName     string
	Email        string
	Bio          string
	Role         Role
	RealName     string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
