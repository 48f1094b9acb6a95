package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskdesk/taskdesk/internal/user"
)

// ErrInvalidCredentials is returned when sign-in fails. Unknown usernames and
// wrong passwords collapse into this single outcome so callers cannot probe
// for account existence.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// Service provides authentication operations.
type Service struct {
	users  user.Repository
	hasher *Hasher
	tokens *Tokens
}

// NewService creates a new auth Service.
func NewService(users user.Repository, hasher *Hasher, tokens *Tokens) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// SignIn verifies a username/password pair against the stored hash and
// returns the matching user. Unknown user, wrong password, and deactivated
// accounts all return ErrInvalidCredentials.
func (s *Service) SignIn(ctx context.Context, username, password string) (*user.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// IssueToken produces a signed bearer token for the given user.
func (s *Service) IssueToken(u *user.User) (string, error) {
	return s.tokens.Issue(u)
}

// BootstrapSuperuser creates the initial superuser if the users table is
// empty. Returns the generated password (only displayed once). If users
// already exist, returns empty string.
func (s *Service) BootstrapSuperuser(ctx context.Context) (string, error) {
	count, err := s.users.CountAll(ctx)
	if err != nil {
		return "", fmt.Errorf("counting users: %w", err)
	}

	if count > 0 {
		return "", nil
	}

	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating random password: %w", err)
	}
	password := base64.RawURLEncoding.EncodeToString(b)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hashing superuser password: %w", err)
	}

	u := &user.User{
		Username:     "superuser",
		FirstName:    "Super",
		LastName:     "User",
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      false,
		IsSuperuser:  true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return "", fmt.Errorf("creating superuser: %w", err)
	}

	slog.Info("Superuser password created", "username", u.Username, "password", password)

	return password, nil
}
