// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/taskbox/taskbox/internal/model"
)

// UserRepository provides read access to user accounts plus seeding.
type UserRepository interface {
	// Create inserts a new user. Fails with errs.ErrAlreadyExists on a
	// duplicate username. Used only for bootstrap seeding.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id int) (*model.User, error)
	// GetByUsername loads a user by username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
