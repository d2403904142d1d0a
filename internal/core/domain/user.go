package domain

import (
	"errors"
	"strings"
	"time"
)

// Role determines which top-level URL namespace a principal may enter.
type Role string

const (
	RolePlayer  Role = "PLAYER"
	RoleAgent   Role = "AGENT"
	RoleAcademy Role = "ACADEMY"
	RoleAdmin   Role = "ADMIN"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountInactive = errors.New("account inactive")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")
var ErrForbidden = errors.New("access forbidden")

// ParseRole normalizes a freeform role string to one of the four roles.
// Input is case-insensitive; empty input defaults to PLAYER.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return RolePlayer, nil
	case RolePlayer:
		return RolePlayer, nil
	case RoleAgent:
		return RoleAgent, nil
	case RoleAcademy:
		return RoleAcademy, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}

// Namespace returns the URL path segment a role is scoped to ("player",
// "agent", "academy", "admin").
func (r Role) Namespace() string {
	return strings.ToLower(string(r))
}

// RoleForNamespace maps a leading URL segment back to its role. The second
// return value is false for segments that are not role namespaces.
func RoleForNamespace(segment string) (Role, bool) {
	switch segment {
	case "player":
		return RolePlayer, true
	case "agent":
		return RoleAgent, true
	case "academy":
		return RoleAcademy, true
	case "admin":
		return RoleAdmin, true
	}
	return "", false
}

// User is the durable identity record owned by the credential store.
// PasswordHash is empty for externally-provisioned accounts that never
// received a local credential.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail applies the write-time canonical form: trimmed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
