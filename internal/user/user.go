package user

import (
	"errors"
	"strings"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var (
	ErrAlreadyExists      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("username must be non-empty and free of commas, slashes and surrounding spaces")
	ErrEmptyPassword      = errors.New("password cannot be empty")
)

type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Credential is one line of the credentials file. Password holds a bcrypt
// hash, or the password itself for accounts registered before hashing.
type Credential struct {
	Username string
	Password string
}

// ValidateUsername rejects names that would corrupt the credentials file or
// escape the personal library directory.
func ValidateUsername(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidUsername
	}
	if strings.TrimSpace(name) != name || strings.ContainsAny(name, `,/\`) {
		return ErrInvalidUsername
	}
	return nil
}
