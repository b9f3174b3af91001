package catalog

import (
	"strings"
	"sync"

	"rosegold_back_end/internal/models"
)

const (
	DefaultRating  = 4.5
	DefaultReviews = 0
)

type ChangeKind string

const (
	Created ChangeKind = "created"
	Updated ChangeKind = "updated"
	Deleted ChangeKind = "deleted"
)

// Change is delivered to subscribers after every effective mutation.
type Change struct {
	Kind    ChangeKind
	Product models.Product
	Version uint64
}

// Store owns the product list for the lifetime of the process.
//
// Mutators never edit the current slice in place: they build a new one and
// swap it in, so a snapshot returned by List is unaffected by later
// mutations, and a changed Version (or slice header) is enough to detect an
// update. Get, the filtered lists and change events hand out deep copies.
type Store struct {
	mu        sync.RWMutex
	products  []models.Product
	version   uint64
	listeners map[int]func(Change)
	nextSub   int
}

// NewStore copies seed into a fresh store.
func NewStore(seed []models.Product) *Store {
	products := make([]models.Product, len(seed))
	for i, p := range seed {
		products[i] = p.Clone()
	}
	return &Store{
		products:  products,
		listeners: make(map[int]func(Change)),
	}
}

// List returns the current snapshot without copying. The slice and the
// products' Images and OriginalPrice are shared with the store and must not
// be written to.
func (s *Store) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Create assigns max(id)+1 (1 when empty), applies the default rating and
// review count, and appends the product.
func (s *Store) Create(draft models.ProductDraft) models.Product {
	s.mu.Lock()
	id := 1
	for _, p := range s.products {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	product := models.Product{
		ID:            id,
		Name:          draft.Name,
		Price:         draft.Price,
		OriginalPrice: draft.OriginalPrice,
		Image:         draft.Image,
		Images:        append([]string(nil), draft.Images...),
		Rating:        DefaultRating,
		Reviews:       DefaultReviews,
		Category:      draft.Category,
		Style:         draft.Style,
		Collection:    draft.Collection,
		Description:   draft.Description,
		IsOnSale:      draft.IsOnSale,
		IsBestSeller:  draft.IsBestSeller,
		InStock:       draft.InStock,
		StockCount:    draft.StockCount,
	}.Clone()
	next := make([]models.Product, len(s.products), len(s.products)+1)
	copy(next, s.products)
	s.products = append(next, product)
	change := s.commit(Created, product)
	s.mu.Unlock()

	s.notify(change)
	return product.Clone()
}

// Update merges patch into the product with the given id. An unknown id is
// a silent no-op; the result only says whether anything matched.
func (s *Store) Update(id int, patch models.ProductPatch) (models.Product, bool) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Product{}, false
	}
	next := make([]models.Product, len(s.products))
	copy(next, s.products)
	next[idx] = patch.Apply(next[idx])
	next[idx].ID = id
	s.products = next
	updated := next[idx]
	change := s.commit(Updated, updated)
	s.mu.Unlock()

	s.notify(change)
	return updated.Clone(), true
}

// Delete removes the product with the given id; unknown ids are ignored.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.products[idx]
	next := make([]models.Product, 0, len(s.products)-1)
	next = append(next, s.products[:idx]...)
	next = append(next, s.products[idx+1:]...)
	s.products = next
	change := s.commit(Deleted, removed)
	s.mu.Unlock()

	s.notify(change)
	return true
}

// Get looks a product up by id. The bool is false when it does not exist.
func (s *Store) Get(id int) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.products[idx].Clone(), true
	}
	return models.Product{}, false
}

func (s *Store) ListByCollection(collection models.Collection) []models.Product {
	return s.filter(func(p models.Product) bool { return p.Collection == collection })
}

func (s *Store) ListByCategory(category string) []models.Product {
	return s.filter(func(p models.Product) bool { return p.Category == category })
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	return distinct(s.List(), func(p models.Product) string { return p.Category })
}

// Styles returns the distinct styles in first-seen order.
func (s *Store) Styles() []string {
	return distinct(s.List(), func(p models.Product) string { return p.Style })
}

// Search is the in-memory fallback used when no search index is configured.
func (s *Store) Search(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Product{}
	}
	return s.filter(func(p models.Product) bool {
		return containsIgnoreCase(p.Name, q) ||
			containsIgnoreCase(p.Description, q) ||
			containsIgnoreCase(p.Category, q) ||
			containsIgnoreCase(p.Style, q)
	})
}

// Subscribe registers fn for change notifications. Callbacks run on the
// mutating goroutine after the store lock is released.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
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

func (s *Store) filter(keep func(models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Product{}
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (s *Store) indexOf(id int) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// commit must be called with the write lock held.
func (s *Store) commit(kind ChangeKind, p models.Product) Change {
	s.version++
	return Change{Kind: kind, Product: p.Clone(), Version: s.version}
}

func (s *Store) notify(change Change) {
	s.mu.RLock()
	fns := make([]func(Change), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(change)
	}
}

func distinct(products []models.Product, key func(models.Product) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range products {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func containsIgnoreCase(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}
