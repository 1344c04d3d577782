package repository

import (
	"context"

	"authdemo/internal/domain"
)

// UserSource resolves login credentials to user records.
type UserSource interface {
	FetchUser(ctx context.Context, username, password string) (*domain.User, error)
}
