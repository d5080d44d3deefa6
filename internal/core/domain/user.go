package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountInactive = errors.New("account is inactive")
var ErrForbidden = errors.New("access forbidden")

// User models an account managed through the admin back office. PasswordHash
// never leaves the server: it is excluded from JSON and every handler returns
// a projection built from the remaining fields.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether r is one of the two supported roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// ValidStatus reports whether s is a supported account status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
