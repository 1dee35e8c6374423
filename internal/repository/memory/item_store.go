package memory

import (
	"context"
	"sync"

	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
)

// ItemStore holds items in memory, in insertion order. IDs come from a
// monotonic counter rather than the collection size, so deleting an item can
// never cause a later create to reuse an existing ID.
type ItemStore struct {
	mu     sync.Mutex
	items  []model.Item
	nextID int
}

// NewItemStore constructs an item store seeded with the given items. The ID
// counter starts past the highest seeded ID.
func NewItemStore(seed []model.Item) *ItemStore {
	s := &ItemStore{nextID: 1}
	for _, it := range seed {
		s.items = append(s.items, it)
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s
}

// ListByOwner returns the caller's items in store order.
func (s *ItemStore) ListByOwner(_ context.Context, ownerID int) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Item{}
	for _, it := range s.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

// Create assigns the next ID and appends the item.
func (s *ItemStore) Create(_ context.Context, item model.Item) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID
	s.nextID++
	s.items = append(s.items, item)
	return item, nil
}

// Update applies patch to the item matching both id and ownerID. Provided
// fields overwrite stored values, with one exception: an explicitly empty
// title is ignored so that every stored item keeps a non-empty title. A
// provided empty description and an explicit completed=false both apply.
func (s *ItemStore) Update(_ context.Context, ownerID, id int, patch model.ItemPatch) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(ownerID, id)
	if i < 0 {
		return model.Item{}, errs.ErrNotFound
	}
	it := &s.items[i]
	if patch.Title != nil && *patch.Title != "" {
		it.Title = *patch.Title
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Completed != nil {
		it.Completed = *patch.Completed
	}
	return *it, nil
}

// Delete removes the item matching both id and ownerID.
func (s *ItemStore) Delete(_ context.Context, ownerID, id int) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(ownerID, id)
	if i < 0 {
		return model.Item{}, errs.ErrNotFound
	}
	it := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return it, nil
}

// indexOf finds an item by id scoped to its owner. Caller holds the lock.
func (s *ItemStore) indexOf(ownerID, id int) int {
	for i := range s.items {
		if s.items[i].ID == id && s.items[i].OwnerID == ownerID {
			return i
		}
	}
	return -1
}
