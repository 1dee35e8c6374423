package repository

import (
	"context"

	"github.com/taskbox/taskbox/internal/model"
)

// ItemRepository provides ownership-scoped access to items. Every method is
// filtered by ownerID; an item belonging to another user behaves exactly like
// a missing item (errs.ErrNotFound).
type ItemRepository interface {
	// ListByOwner returns all items owned by ownerID in insertion order.
	ListByOwner(ctx context.Context, ownerID int) ([]model.Item, error)

	// Create stores a new item, assigns its ID, and returns the stored copy.
	Create(ctx context.Context, item model.Item) (model.Item, error)

	// Update applies patch to the item matching both id and ownerID and
	// returns the updated copy.
	Update(ctx context.Context, ownerID, id int, patch model.ItemPatch) (model.Item, error)

	// Delete removes the item matching both id and ownerID and returns the
	// removed copy.
	Delete(ctx context.Context, ownerID, id int) (model.Item, error)
}
