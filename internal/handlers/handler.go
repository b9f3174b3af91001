// Package handlers is the JSON view layer over the storefront stores.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rosegold_back_end/internal/address"
	"rosegold_back_end/internal/cart"
	"rosegold_back_end/internal/catalog"
	"rosegold_back_end/internal/identity"
	"rosegold_back_end/internal/models"
	"rosegold_back_end/internal/wishlist"
)

// ProductSearcher returns matching product ids in relevance order.
type ProductSearcher interface {
	Search(ctx context.Context, query string) ([]int, error)
}

// ImageStore resolves stored image references into loadable URLs and
// accepts uploads.
type ImageStore interface {
	Product(ctx context.Context, p models.Product) models.Product
	Upload(ctx context.Context, productID int, filename string, r io.Reader, size int64, contentType string) (string, error)
}

type Deps struct {
	Catalog   *catalog.Store
	Cart      *cart.Store
	Wishlist  *wishlist.Store
	Identity  *identity.Manager
	Addresses *address.Book

	// Optional.
	Search ProductSearcher
	Images ImageStore
}

type Handler struct {
	Deps
}

func New(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

var errInvalidID = errors.New("invalid id")

func paramID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// view prepares a product for the response.
func (h *Handler) view(ctx context.Context, p models.Product) models.Product {
	if h.Images != nil {
		p = h.Images.Product(ctx, p)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}

func (h *Handler) views(ctx context.Context, products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = h.view(ctx, p)
	}
	return out
}

// identityStatus maps a provider failure onto an HTTP status.
func identityStatus(err *identity.Error) int {
	switch err.Kind {
	case identity.KindInvalidCredential:
		return http.StatusUnauthorized
	case identity.KindEmailInUse:
		return http.StatusConflict
	case identity.KindInvalidEmail, identity.KindWeakPassword:
		return http.StatusBadRequest
	case identity.KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondIdentityError(c *gin.Context, err error) {
	idErr := identity.AsError(err)
	c.JSON(identityStatus(idErr), gin.H{"error": idErr.Message(), "code": idErr.Code()})
}
