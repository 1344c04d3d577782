package service

import (
	"context"
	"database/sql"

	"authdemo/internal/cache"
	"authdemo/internal/domain"
	"authdemo/internal/repository"
)

// AuthService describes user authentication operations.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	IsConnected() bool
}

type authService struct {
	db     *sql.DB
	source repository.UserSource
	cache  *cache.UserCache
}

// NewAuthService wires the opaque database handle, the user source and the
// username-keyed cache together. db may be nil; IsConnected reports on it.
func NewAuthService(db *sql.DB, source repository.UserSource, users *cache.UserCache) AuthService {
	return &authService{
		db:     db,
		source: source,
		cache:  users,
	}
}

// Authenticate resolves credentials to a user record. The cache is keyed by
// username only, so a cached entry is returned without the password being
// consulted again.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if user, ok := s.cache.Get(username); ok {
		return user, nil
	}

	user, err := s.source.FetchUser(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user != nil {
		s.cache.Put(username, user)
	}
	return user, nil
}

// IsConnected reports whether a database handle was injected. No ping is made.
func (s *authService) IsConnected() bool {
	return s.db != nil
}

// HashPassword derives the storage form of a password. Placeholder scheme: the
// result is the input behind a fixed prefix, not a cryptographic hash.
func HashPassword(password string) string {
	return "hashed_" + password
}
