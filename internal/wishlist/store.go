package wishlist

import (
	"sync"

	"rosegold_back_end/internal/models"
)

// Store is a set of saved products keyed by ID, kept in insertion order.
type Store struct {
	mu    sync.RWMutex
	items []models.WishlistItem
}

func NewStore() *Store {
	return &Store{items: []models.WishlistItem{}}
}

func (s *Store) Items() []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Add saves item unless its ID is already present.
func (s *Store) Add(item models.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(item)
}

func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
}

func (s *Store) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// Toggle adds item when absent and removes it when present. It returns
// whether the item is saved afterwards.
func (s *Store) Toggle(item models.WishlistItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remove(item.ID) {
		return false
	}
	s.add(item)
	return true
}

func (s *Store) add(item models.WishlistItem) {
	if s.indexOf(item.ID) >= 0 {
		return
	}
	next := make([]models.WishlistItem, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, item)
}

func (s *Store) remove(id int) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	next := make([]models.WishlistItem, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	s.items = append(next, s.items[idx+1:]...)
	return true
}

func (s *Store) indexOf(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
