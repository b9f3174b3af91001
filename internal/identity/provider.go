package identity

import (
	"context"

	"rosegold_back_end/internal/models"
)

// Provider is the external authentication capability set.
//
// Subscribe must deliver the provider's current session once,
// asynchronously, after registration, and then exactly one notification per
// actual session change. A nil session means signed out. The returned
// function stops delivery.
//
// Failed operations return an *Error.
type Provider interface {
	Register(ctx context.Context, name, email, password string) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Subscribe(fn func(*models.Session)) (unsubscribe func())
}
