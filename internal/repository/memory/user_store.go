// Package memory implements the repository interfaces with in-process state.
// A mutex guards each store: handlers run on parallel goroutines and the
// find-then-mutate sequences are not atomic by construction.
package memory

import (
	"context"
	"sync"

	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
)

// UserStore holds user accounts in memory. Read-only after seeding.
type UserStore struct {
	mu    sync.Mutex
	users []model.User
}

// NewUserStore constructs an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create inserts a new user, rejecting duplicate usernames.
func (s *UserStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == u.Username {
			return errs.ErrAlreadyExists
		}
	}
	s.users = append(s.users, *u)
	return nil
}

// GetByID loads a user by ID.
func (s *UserStore) GetByID(_ context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, errs.ErrNotFound
}

// GetByUsername loads a user by username.
func (s *UserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, errs.ErrNotFound
}
