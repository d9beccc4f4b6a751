package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"booktracker/internal/platform/crypto"
	"booktracker/internal/session"
	"booktracker/internal/user"
)

var ErrUnauthorized = errors.New("unauthorized")

// Token is the result of a successful login.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	User        user.User `json:"user"`
}

type Service struct {
	secret      string
	ttl         time.Duration
	users       *user.Service
	revocations *session.Revocations
	onLogout    []func(username string) error
}

func NewService(secret string, ttl time.Duration, users *user.Service, revocations *session.Revocations) *Service {
	return &Service{
		secret:      secret,
		ttl:         ttl,
		users:       users,
		revocations: revocations,
	}
}

// OnLogout registers fn to run after a user's token is revoked.
func (s *Service) OnLogout(fn func(username string) error) {
	s.onLogout = append(s.onLogout, fn)
}

func (s *Service) Login(username, password string) (Token, error) {
	u, err := s.users.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return Token{}, ErrUnauthorized
		}
		return Token{}, err
	}
	return s.issue(u)
}

// Register creates the account and logs it in.
func (s *Service) Register(username, password string) (Token, error) {
	u, err := s.users.Register(username, password)
	if err != nil {
		return Token{}, err
	}
	return s.issue(u)
}

func (s *Service) issue(u user.User) (Token, error) {
	accessToken, _, _, err := crypto.GenerateToken(s.secret, u.Username, u.Role, s.ttl)
	if err != nil {
		return Token{}, err
	}
	return Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.ttl.Seconds()),
		User:        u,
	}, nil
}

// Logout revokes the access token and runs the logout hooks. Hook
// failures are logged; the token stays revoked.
func (s *Service) Logout(_ context.Context, token string) error {
	claims, err := crypto.ParseToken(s.secret, token)
	if err != nil {
		return ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.ttl)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	s.revocations.Revoke(claims.ID, expiresAt)

	for _, fn := range s.onLogout {
		if err := fn(claims.Sub); err != nil {
			log.Printf("auth: logout hook failed user=%s err=%v", claims.Sub, err)
		}
	}
	return nil
}
