package service

import (
	"context"

	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
	"github.com/taskbox/taskbox/internal/repository"
)

// ItemService defines ownership-scoped CRUD over items. Every operation takes
// the caller's resolved user ID; items owned by other users are invisible.
type ItemService interface {
	// List returns all of the caller's items in store order.
	List(ctx context.Context, ownerID int) ([]model.Item, error)
	// Create stores a new incomplete item owned by the caller.
	Create(ctx context.Context, ownerID int, title, description string) (model.Item, error)
	// Update patches an item the caller owns.
	Update(ctx context.Context, ownerID, id int, patch model.ItemPatch) (model.Item, error)
	// Delete removes an item the caller owns and returns it.
	Delete(ctx context.Context, ownerID, id int) (model.Item, error)
}

type ItemServiceImpl struct {
	repo repository.ItemRepository
}

// NewItemService constructs ItemService over the given repository.
func NewItemService(repo repository.ItemRepository) *ItemServiceImpl {
	return &ItemServiceImpl{repo: repo}
}

// List returns the caller's items.
func (s *ItemServiceImpl) List(ctx context.Context, ownerID int) ([]model.Item, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create validates the title and stores a new item. The item starts
// incomplete and the description defaults to empty.
func (s *ItemServiceImpl) Create(ctx context.Context, ownerID int, title, description string) (model.Item, error) {
	if title == "" {
		return model.Item{}, errs.ErrEmptyTitle
	}
	return s.repo.Create(ctx, model.Item{
		Title:       title,
		Description: description,
		Completed:   false,
		OwnerID:     ownerID,
	})
}

// Update patches the item matching id scoped to the caller. A missing item
// and an item owned by someone else both return errs.ErrNotFound.
func (s *ItemServiceImpl) Update(ctx context.Context, ownerID, id int, patch model.ItemPatch) (model.Item, error) {
	return s.repo.Update(ctx, ownerID, id, patch)
}

// Delete removes the item matching id scoped to the caller.
func (s *ItemServiceImpl) Delete(ctx context.Context, ownerID, id int) (model.Item, error) {
	return s.repo.Delete(ctx, ownerID, id)
}
