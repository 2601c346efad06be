package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCredentials deliberately does not say which of
// username/password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the single fixed administrator identity.
type Credentials struct {
	Username string
	Password string
}

// Service implements login/logout/authorize over an injected TokenStore.
type Service struct {
	tokens TokenStore
	admin  Credentials
}

func NewService(tokens TokenStore, admin Credentials) *Service {
	return &Service{tokens: tokens, admin: admin}
}

// Login checks the credential pair and, on match, mints a token that is
// unique among currently active tokens and inserts it into the store.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.admin.Username || password != s.admin.Password {
		return "", ErrInvalidCredentials
	}

	for i := 0; i < 5; i++ {
		token := newToken()
		active, err := s.tokens.Contains(ctx, token)
		if err != nil {
			return "", fmt.Errorf("token store: %w", err)
		}
		if active {
			continue
		}
		if err := s.tokens.Insert(ctx, token); err != nil {
			return "", fmt.Errorf("token store: %w", err)
		}
		return token, nil
	}

	return "", fmt.Errorf("failed to generate unique session token")
}

// Logout revokes the token. Revoking an unknown token succeeds.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.tokens.Remove(ctx, token); err != nil {
		return fmt.Errorf("token store: %w", err)
	}
	return nil
}

// Authorize reports whether the token is currently active.
func (s *Service) Authorize(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := s.tokens.Contains(ctx, token)
	return err == nil && ok
}

// newToken builds an opaque bearer token from a timestamp plus a random
// component, base64-encoded.
func newToken() string {
	raw := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}
