package user

import (
	"booktracker/internal/platform/crypto"
)

type Service struct {
	repo  Repository
	admin Credential
}

// NewService configures the built-in admin account, which lives outside
// the credentials file.
func NewService(repo Repository, adminUsername, adminPassword string) *Service {
	return &Service{
		repo:  repo,
		admin: Credential{Username: adminUsername, Password: adminPassword},
	}
}

func (s *Service) Register(username, password string) (User, error) {
	if err := ValidateUsername(username); err != nil {
		return User{}, err
	}
	if password == "" {
		return User{}, ErrEmptyPassword
	}
	if username == s.admin.Username {
		return User{}, ErrAlreadyExists
	}

	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return User{}, err
	}
	if err := s.repo.Create(Credential{Username: username, Password: hashed}); err != nil {
		return User{}, err
	}
	return User{Username: username, Role: RoleUser}, nil
}

// Authenticate checks the admin account first, then the credentials file.
func (s *Service) Authenticate(username, password string) (User, error) {
	if s.admin.Username != "" && username == s.admin.Username {
		if crypto.VerifyPassword(s.admin.Password, password) {
			return User{Username: username, Role: RoleAdmin}, nil
		}
		return User{}, ErrInvalidCredentials
	}

	c, ok, err := s.repo.Find(username)
	if err != nil {
		return User{}, err
	}
	if !ok || !crypto.VerifyPassword(c.Password, password) {
		return User{}, ErrInvalidCredentials
	}
	return User{Username: username, Role: RoleUser}, nil
}

// Lookup resolves a username to its role without checking a password,
// for restoring a saved session.
func (s *Service) Lookup(username string) (User, bool, error) {
	if s.admin.Username != "" && username == s.admin.Username {
		return User{Username: username, Role: RoleAdmin}, true, nil
	}
	_, ok, err := s.repo.Find(username)
	if err != nil || !ok {
		return User{}, false, err
	}
	return User{Username: username, Role: RoleUser}, true, nil
}
