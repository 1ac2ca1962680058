package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// ParseRole accepts a role name case-insensitively. Empty means student.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleStudent:
		return RoleStudent, nil
	case RoleTutor:
		return RoleTutor, nil
	default:
		return "", fmt.Errorf("invalid role %q (use student or tutor)", s)
	}
}

// NormalizeEmail case-folds and trims an email; accounts are keyed on the result.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User is the identity decoded from the session token.
type User struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) IsTutor() bool { return u.Role == RoleTutor }

// UserRecord is a user directory entry.
type UserRecord struct {
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
}
