// Package service contains application services for authentication and items.
package service

import (
	"context"
	"time"

	pkgcrypto "github.com/taskbox/taskbox/internal/crypto"
	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
	"github.com/taskbox/taskbox/internal/repository"
	"github.com/taskbox/taskbox/internal/token"
)

// AuthService defines credential verification and token issuance.
type AuthService interface {
	// Login authenticates the user and returns a signed access token.
	Login(ctx context.Context, username, password string) (tok string, user model.User, err error)
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	codec     *token.Codec
	accessTTL time.Duration
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, codec *token.Codec, accessTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, codec: codec, accessTTL: accessTTL}
}

// Login authenticates username/password against the credential store.
// Unknown users and wrong passwords return the same ErrInvalidCredentials so
// responses never reveal whether an account exists.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, model.User, error) {
	if username == "" || password == "" {
		return "", model.User{}, errs.ErrMissingCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword(password, u.PasswordHash) {
		return "", model.User{}, errs.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(*u, s.accessTTL)
	if err != nil {
		return "", model.User{}, err
	}
	return tok, *u, nil
}
