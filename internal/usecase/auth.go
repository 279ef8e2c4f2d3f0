package usecase

import (
	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	pkgAuth "github.com/hazemhalim/dukkan/internal/pkg/auth"
)

// AuthUseCase validates the shared admin password and manages session tokens.
type AuthUseCase struct {
	passwordHash string
	hasher       pkgAuth.PasswordHasher
	tokens       pkgAuth.Strategy
}

// NewAuthUseCase hashes the configured admin password once at construction so
// the plaintext is never kept around.
func NewAuthUseCase(adminPassword string, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) (*AuthUseCase, error) {
	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		return nil, err
	}
	return &AuthUseCase{passwordHash: hash, hasher: hasher, tokens: strategy}, nil
}

// Login checks the shared password and issues a session token.
func (u *AuthUseCase) Login(password string) (string, error) {
	if password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}
	if err := u.hasher.Compare(u.passwordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}
	return u.tokens.IssueToken()
}

// ParseToken validates a session token.
func (u *AuthUseCase) ParseToken(token string) error {
	return u.tokens.ParseToken(token)
}
