package cart

import (
	"sync"

	"rosegold_back_end/internal/models"
)

// Store holds the cart lines, at most one per product ID.
type Store struct {
	mu        sync.RWMutex
	items     []models.CartItem
	listeners map[int]func([]models.CartItem)
	nextSub   int
}

func NewStore() *Store {
	return &Store{
		items:     []models.CartItem{},
		listeners: make(map[int]func([]models.CartItem)),
	}
}

// Items returns the current lines. Treat the slice as read-only.
func (s *Store) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Add puts one unit of item in the cart. An existing line with the same ID
// gets its quantity bumped by one; its size and snapshot price are kept.
func (s *Store) Add(item models.CartItem) {
	s.mutate(func(items []models.CartItem) []models.CartItem {
		for i := range items {
			if items[i].ID == item.ID {
				items[i].Quantity++
				return items
			}
		}
		item.Quantity = 1
		return append(items, item)
	})
}

// SetQuantity replaces a line's quantity, clamped to at least 1. Dropping a
// line takes an explicit Remove. Unknown IDs are ignored.
func (s *Store) SetQuantity(id, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mutate(func(items []models.CartItem) []models.CartItem {
		for i := range items {
			if items[i].ID == id {
				items[i].Quantity = quantity
				return items
			}
		}
		return nil
	})
}

func (s *Store) Remove(id int) {
	s.mutate(func(items []models.CartItem) []models.CartItem {
		out := items[:0]
		for _, it := range items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		if len(out) == len(items) {
			return nil
		}
		return out
	})
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() {
	s.mutate(func(items []models.CartItem) []models.CartItem {
		if len(items) == 0 {
			return nil
		}
		return []models.CartItem{}
	})
}

// Drain empties the cart and returns the lines it held, in one step.
func (s *Store) Drain() []models.CartItem {
	var taken []models.CartItem
	s.mutate(func(items []models.CartItem) []models.CartItem {
		if len(items) == 0 {
			return nil
		}
		taken = items
		return []models.CartItem{}
	})
	return taken
}

func (s *Store) TotalItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums the snapshot prices, so catalog price edits never move it.
func (s *Store) TotalPrice() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, it := range s.items {
		total += it.LineTotal()
	}
	return total
}

// Subscribe registers fn to receive the new lines after every change.
func (s *Store) Subscribe(fn func([]models.CartItem)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate hands change a private copy of the lines. A nil result means
// nothing changed.
func (s *Store) mutate(change func([]models.CartItem) []models.CartItem) {
	s.mu.Lock()
	work := make([]models.CartItem, len(s.items), len(s.items)+1)
	copy(work, s.items)
	next := change(work)
	if next == nil {
		s.mu.Unlock()
		return
	}
	s.items = next
	fns := make([]func([]models.CartItem), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
