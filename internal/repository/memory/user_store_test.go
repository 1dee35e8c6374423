package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
)

func TestUserStore_CreateAndLookups(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := model.User{ID: 1, Username: "admin", PasswordHash: "h", Email: "admin@test.com"}
	require.NoError(t, s.Create(ctx, &u))

	byName, err := s.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, u, *byName)

	byID, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, u, *byID)

	_, err = s.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.GetByID(ctx, 99)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &model.User{ID: 1, Username: "admin"}))
	err := s.Create(ctx, &model.User{ID: 2, Username: "admin"})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}
