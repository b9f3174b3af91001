package local

import (
	"context"
	"errors"
	"strings"
	"sync"

	"rosegold_back_end/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Directory stores user accounts keyed by email. Implementations compare
// emails case-insensitively.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user models.User) error
}

type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{users: make(map[string]models.User)}
}

func (d *MemoryDirectory) FindByEmail(_ context.Context, email string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.users[NormalizeEmail(email)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (d *MemoryDirectory) Create(_ context.Context, user models.User) error {
	key := NormalizeEmail(user.Email)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.users[key]; exists {
		return ErrEmailTaken
	}
	d.users[key] = user
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
