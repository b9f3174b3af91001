// Package address holds the signed-in shopper's saved shipping addresses.
package address

import (
	"sync"

	"rosegold_back_end/internal/models"
)

// SampleAddresses is the book a fresh account starts with.
func SampleAddresses() []models.Address {
	return []models.Address{{
		ID:        1,
		Name:      "GSK",
		Phone:     "9876543210",
		Street:    "123 Elegance Avenue",
		City:      "Mumbai",
		State:     "Maharashtra",
		Pincode:   "400001",
		IsDefault: true,
	}}
}

// Book is an ordered address list with at most one default entry.
// Operations on unknown ids are no-ops reported through the bool result.
type Book struct {
	mu        sync.RWMutex
	addresses []models.Address
}

func NewBook(seed []models.Address) *Book {
	return &Book{addresses: append([]models.Address{}, seed...)}
}

func (b *Book) List() []models.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.addresses
}

func (b *Book) Get(id int) (models.Address, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.indexOf(id); i >= 0 {
		return b.addresses[i], true
	}
	return models.Address{}, false
}

// Default returns the default address, if one is set.
func (b *Book) Default() (models.Address, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, a := range b.addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return models.Address{}, false
}

// Add appends the draft with id max+1. The first address in an empty book
// becomes the default.
func (b *Book) Add(draft models.AddressDraft) models.Address {
	b.mu.Lock()
	defer b.mu.Unlock()

	maxID := 0
	for _, a := range b.addresses {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	created := models.Address{
		ID:        maxID + 1,
		Name:      draft.Name,
		Phone:     draft.Phone,
		Email:     draft.Email,
		Street:    draft.Street,
		Line2:     draft.Line2,
		City:      draft.City,
		State:     draft.State,
		Pincode:   draft.Pincode,
		IsDefault: len(b.addresses) == 0,
	}

	next := make([]models.Address, 0, len(b.addresses)+1)
	next = append(next, b.addresses...)
	b.addresses = append(next, created)
	return created
}

func (b *Book) Update(id int, patch models.AddressPatch) (models.Address, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return models.Address{}, false
	}
	next := append([]models.Address{}, b.addresses...)
	next[i] = patch.Apply(next[i])
	b.addresses = next
	return next[i], true
}

// Delete removes the address. Removing the default does not promote another.
func (b *Book) Delete(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	next := make([]models.Address, 0, len(b.addresses)-1)
	next = append(next, b.addresses[:i]...)
	b.addresses = append(next, b.addresses[i+1:]...)
	return true
}

// SetDefault makes id the only default address.
func (b *Book) SetDefault(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.indexOf(id) < 0 {
		return false
	}
	next := make([]models.Address, len(b.addresses))
	for i, a := range b.addresses {
		a.IsDefault = a.ID == id
		next[i] = a
	}
	b.addresses = next
	return true
}

func (b *Book) indexOf(id int) int {
	for i, a := range b.addresses {
		if a.ID == id {
			return i
		}
	}
	return -1
}
