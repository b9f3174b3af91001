package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosegold_back_end/internal/address"
	"rosegold_back_end/internal/cart"
	"rosegold_back_end/internal/catalog"
	"rosegold_back_end/internal/identity"
	"rosegold_back_end/internal/models"
	"rosegold_back_end/internal/wishlist"
)

// --- Mocks ---

type MockProvider struct {
	notify func(*models.Session)

	LoginErr    error
	RegisterErr error
}

func (m *MockProvider) Register(_ context.Context, _, email, _ string) (*models.Session, error) {
	if m.RegisterErr != nil {
		return nil, m.RegisterErr
	}
	s := &models.Session{ID: "new-user", Email: &email}
	m.notify(s)
	return s, nil
}

func (m *MockProvider) Login(_ context.Context, email, _ string) (*models.Session, error) {
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	s := &models.Session{ID: "user-1", Email: &email}
	m.notify(s)
	return s, nil
}

func (m *MockProvider) Logout(context.Context) error {
	m.notify(nil)
	return nil
}

func (m *MockProvider) Subscribe(fn func(*models.Session)) func() {
	m.notify = fn
	return func() {}
}

type MockSearcher struct {
	IDs []int
	Err error
}

func (m *MockSearcher) Search(context.Context, string) ([]int, error) {
	return m.IDs, m.Err
}

type MockImages struct {
	Uploaded []string
}

func (m *MockImages) Product(_ context.Context, p models.Product) models.Product {
	if p.Image != "" && !strings.HasPrefix(p.Image, "http") {
		p.Image = "https://cdn.test/" + p.Image
	}
	return p
}

func (m *MockImages) Upload(_ context.Context, productID int, filename string, r io.Reader, _ int64, _ string) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	m.Uploaded = append(m.Uploaded, filename)
	return "products/" + filename, nil
}

// --- Helpers ---

func init() {
	gin.SetMode(gin.TestMode)
}

func fixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Rose Ring", Price: 4599, Category: "Ring", Style: "Rose Gold", Collection: models.CollectionWomen, Rating: 4.8, IsBestSeller: true, InStock: true, StockCount: 12, Image: "https://img.test/1.jpg"},
		{ID: 2, Name: "Silver Band", Price: 2500, Category: "Ring", Style: "Silver", Collection: models.CollectionWomen, Rating: 4.6, InStock: true, StockCount: 30},
		{ID: 3, Name: "Figaro Chain", Price: 4800, Category: "Chain", Style: "Silver", Collection: models.CollectionMen, Rating: 4.8, IsBestSeller: true, InStock: true, StockCount: 25},
		{ID: 4, Name: "Beaded Bracelet", Price: 1500, Category: "Bracelet", Style: "Beads", Collection: models.CollectionWomen, Rating: 4.9, InStock: false, StockCount: 0},
	}
}

type testEnv struct {
	h        *Handler
	r        *gin.Engine
	provider *MockProvider
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	provider := &MockProvider{}
	manager := identity.NewManager(provider)
	manager.Start()
	provider.notify(nil)

	h := New(Deps{
		Catalog:   catalog.NewStore(fixture()),
		Cart:      cart.NewStore(),
		Wishlist:  wishlist.NewStore(),
		Identity:  manager,
		Addresses: address.NewBook(address.SampleAddresses()),
	})

	r := gin.New()
	api := r.Group("/api")
	api.GET("/products", h.ListProducts)
	api.GET("/products/search", h.SearchProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/collections/:collection", h.ListCollection)
	api.GET("/categories/:category", h.ListCategory)
	api.POST("/admin/products", h.CreateProduct)
	api.PUT("/admin/products/:id", h.UpdateProduct)
	api.DELETE("/admin/products/:id", h.DeleteProduct)
	api.POST("/admin/products/:id/images", h.UploadProductImage)
	api.GET("/cart", h.GetCart)
	api.DELETE("/cart", h.ClearCart)
	api.GET("/cart/ws", h.CartWebSocket)
	api.POST("/cart/items", h.AddCartItem)
	api.PUT("/cart/items/:id", h.UpdateCartItem)
	api.DELETE("/cart/items/:id", h.RemoveCartItem)
	api.GET("/wishlist", h.GetWishlist)
	api.POST("/wishlist/items", h.AddWishlistItem)
	api.POST("/wishlist/toggle", h.ToggleWishlistItem)
	api.GET("/wishlist/items/:id", h.WishlistContains)
	api.DELETE("/wishlist/items/:id", h.RemoveWishlistItem)
	api.GET("/session", h.GetSession)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/account/addresses", h.ListAddresses)
	api.POST("/account/addresses", h.CreateAddress)
	api.PUT("/account/addresses/:id", h.UpdateAddress)
	api.DELETE("/account/addresses/:id", h.DeleteAddress)
	api.POST("/account/addresses/:id/default", h.SetDefaultAddress)
	api.GET("/checkout/summary", h.CheckoutSummary)
	api.POST("/checkout/orders", h.PlaceOrder)

	return &testEnv{h: h, r: r, provider: provider}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type productList struct {
	Title      string           `json:"title"`
	Total      int              `json:"total"`
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
	Styles     []string         `json:"styles"`
	Source     string           `json:"source"`
}

type cartBody struct {
	Items  []models.CartItem `json:"items"`
	Count  int               `json:"count"`
	Totals models.Totals     `json:"totals"`
}

func productIDs(products []models.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

// --- Catalog ---

func TestListProducts(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantTitle string
		wantIDs   []int
	}{
		{"featured default", "", "All Jewelry", []int{1, 3, 2, 4}},
		{"women by price", "?collection=women&sort=price-low", "Women's Collection", []int{4, 2, 1}},
		{"category", "?category=Ring&sort=price-high", "Shop Rings", []int{1, 2}},
		{"styles are or-ed", "?style=Silver&style=Beads&sort=rating", "All Jewelry", []int{4, 3, 2}},
		{"max price", "?max_price=2500", "All Jewelry", []int{2, 4}},
		{"all collection", "?collection=all&max_price=50000&sort=unknown", "All Jewelry", []int{1, 3, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			w := e.do(http.MethodGet, "/api/products"+tt.query, nil)

			require.Equal(t, http.StatusOK, w.Code)
			body := decode[productList](t, w)
			assert.Equal(t, tt.wantTitle, body.Title)
			assert.Equal(t, tt.wantIDs, productIDs(body.Products))
			assert.Equal(t, len(tt.wantIDs), body.Total)
			assert.Equal(t, []string{"Ring", "Chain", "Bracelet"}, body.Categories)
			assert.Equal(t, []string{"Rose Gold", "Silver", "Beads"}, body.Styles)
		})
	}
}

func TestListProducts_BadMaxPrice(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/products?max_price=cheap", nil).Code)
}

func TestGetProduct(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodGet, "/api/products/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[models.Product](t, w)
	assert.Equal(t, "Figaro Chain", p.Name)
	assert.NotNil(t, p.Images)

	w = e.do(http.MethodGet, "/api/products/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"product not found"}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/products/abc", nil).Code)
}

func TestSearchProducts(t *testing.T) {
	t.Run("memory fallback", func(t *testing.T) {
		e := newEnv(t)
		body := decode[productList](t, e.do(http.MethodGet, "/api/products/search?q=silver", nil))
		assert.Equal(t, "memory", body.Source)
		assert.Equal(t, []int{2, 3}, productIDs(body.Products))
	})

	t.Run("index hits resolved against the store", func(t *testing.T) {
		e := newEnv(t)
		e.h.Search = &MockSearcher{IDs: []int{3, 99, 1}}
		body := decode[productList](t, e.do(http.MethodGet, "/api/products/search?q=gold", nil))
		assert.Equal(t, "elasticsearch", body.Source)
		assert.Equal(t, []int{3, 1}, productIDs(body.Products))
	})

	t.Run("index failure falls back", func(t *testing.T) {
		e := newEnv(t)
		e.h.Search = &MockSearcher{Err: errors.New("connection refused")}
		body := decode[productList](t, e.do(http.MethodGet, "/api/products/search?q=band", nil))
		assert.Equal(t, "memory", body.Source)
		assert.Equal(t, []int{2}, productIDs(body.Products))
	})

	t.Run("empty query", func(t *testing.T) {
		e := newEnv(t)
		assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/products/search?q=+", nil).Code)
	})
}

func TestCollectionsAndCategories(t *testing.T) {
	e := newEnv(t)

	body := decode[productList](t, e.do(http.MethodGet, "/api/collections/men", nil))
	assert.Equal(t, []int{3}, productIDs(body.Products))

	body = decode[productList](t, e.do(http.MethodGet, "/api/categories/Ring", nil))
	assert.Equal(t, []int{1, 2}, productIDs(body.Products))

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/api/collections/pets", nil).Code)
}

func TestImagesAreResolved(t *testing.T) {
	e := newEnv(t)
	e.h.Images = &MockImages{}
	name := "key.jpg"
	e.h.Catalog.Update(2, models.ProductPatch{Image: &name})

	p := decode[models.Product](t, e.do(http.MethodGet, "/api/products/2", nil))
	assert.Equal(t, "https://cdn.test/key.jpg", p.Image)

	p = decode[models.Product](t, e.do(http.MethodGet, "/api/products/1", nil))
	assert.Equal(t, "https://img.test/1.jpg", p.Image)
}

// --- Admin ---

func TestCreateProduct(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/admin/products", map[string]any{
		"name":          "Pearl Drops",
		"price":         3100,
		"originalPrice": 3500,
		"category":      "Earring",
		"stockCount":    0,
		"inStock":       true,
		"images":        []string{"", "https://img.test/a.jpg"},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	p := decode[models.Product](t, w)
	assert.Equal(t, 5, p.ID)
	assert.False(t, p.InStock, "derived from stockCount")
	assert.True(t, p.IsOnSale)
	assert.Equal(t, models.CollectionWomen, p.Collection)
	assert.Equal(t, []string{"https://img.test/a.jpg"}, p.Images)
	assert.Equal(t, catalog.DefaultRating, p.Rating)
}

func TestCreateProduct_Invalid(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/admin/products", map[string]any{"price": 100}).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/admin/products", map[string]any{"name": "x", "price": 0}).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/admin/products", map[string]any{"name": "x", "price": 10, "collection": "pets"}).Code)
	assert.Len(t, e.h.Catalog.List(), 4)
}

func TestUpdateProduct(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPut, "/api/admin/products/2", map[string]any{"stockCount": 0, "price": 2700})
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[models.Product](t, w)
	assert.Equal(t, 2700, p.Price)
	assert.False(t, p.InStock)
	assert.Equal(t, "Silver Band", p.Name)

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPut, "/api/admin/products/99", map[string]any{"price": 1}).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPut, "/api/admin/products/2", map[string]any{"price": -1}).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPut, "/api/admin/products/2", map[string]any{"stockCount": -1}).Code)
}

func TestDeleteProduct(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, http.StatusOK, e.do(http.MethodDelete, "/api/admin/products/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/admin/products/1", nil).Code)
	assert.Equal(t, []int{2, 3, 4}, productIDs(e.h.Catalog.List()))
}

func TestUploadProductImage(t *testing.T) {
	e := newEnv(t)

	upload := func(id string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="side.png"`)
		header.Set("Content-Type", "image/png")
		part, _ := mw.CreatePart(header)
		part.Write([]byte("\x89PNG fake"))
		mw.Close()

		req, _ := http.NewRequest(http.MethodPost, "/api/admin/products/"+id+"/images", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		e.r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusServiceUnavailable, upload("2").Code)

	images := &MockImages{}
	e.h.Images = images
	w := upload("2")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, []string{"side.png"}, images.Uploaded)

	stored, _ := e.h.Catalog.Get(2)
	assert.Equal(t, []string{"products/side.png"}, stored.Images)
	assert.Equal(t, "products/side.png", stored.Image, "first upload becomes the primary image")

	assert.Equal(t, http.StatusNotFound, upload("99").Code)
}

// --- Cart ---

func TestCart_AddMergesAndSnapshotsPrice(t *testing.T) {
	e := newEnv(t)

	e.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 1, "size": "7"})
	w := e.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 1, "size": "8"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[cartBody](t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, "7", body.Items[0].Size)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, models.Totals{Subtotal: 9198, Shipping: 0, Total: 9198}, body.Totals)

	price := 9999
	e.h.Catalog.Update(1, models.ProductPatch{Price: &price})
	body = decode[cartBody](t, e.do(http.MethodGet, "/api/cart", nil))
	assert.Equal(t, 4599, body.Items[0].Price)
}

func TestCart_AddRejections(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, http.StatusConflict, e.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 4}).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 99}).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/cart/items", map[string]any{}).Code)
	assert.Empty(t, e.h.Cart.Items())
}

func TestCart_QuantityAndRemoval(t *testing.T) {
	e := newEnv(t)
	e.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 2})
	e.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 3})

	body := decode[cartBody](t, e.do(http.MethodPut, "/api/cart/items/2", map[string]any{"quantity": 0}))
	assert.Equal(t, 1, body.Items[0].Quantity, "clamped to one")

	body = decode[cartBody](t, e.do(http.MethodPut, "/api/cart/items/2", map[string]any{"quantity": 3}))
	assert.Equal(t, 3, body.Items[0].Quantity)
	assert.Equal(t, 4, body.Count)

	w := e.do(http.MethodDelete, "/api/cart/items/99", nil)
	assert.Equal(t, http.StatusOK, w.Code, "unknown line is a no-op")
	assert.Len(t, decode[cartBody](t, w).Items, 2)

	body = decode[cartBody](t, e.do(http.MethodDelete, "/api/cart/items/2", nil))
	assert.Len(t, body.Items, 1)

	body = decode[cartBody](t, e.do(http.MethodDelete, "/api/cart", nil))
	assert.Empty(t, body.Items)
	assert.Equal(t, models.Totals{Subtotal: 0, Shipping: 99, Total: 99}, body.Totals)
}

// --- Wishlist ---

func TestWishlist(t *testing.T) {
	e := newEnv(t)

	e.do(http.MethodPost, "/api/wishlist/items", map[string]any{"product_id": 2})
	e.do(http.MethodPost, "/api/wishlist/items", map[string]any{"product_id": 2})
	body := decode[struct {
		Items []models.WishlistItem `json:"items"`
	}](t, e.do(http.MethodGet, "/api/wishlist", nil))
	assert.Len(t, body.Items, 1)

	toggled := decode[struct {
		Saved bool `json:"saved"`
		Count int  `json:"count"`
	}](t, e.do(http.MethodPost, "/api/wishlist/toggle", map[string]any{"product_id": 3}))
	assert.True(t, toggled.Saved)
	assert.Equal(t, 2, toggled.Count)

	contains := decode[struct {
		Saved bool `json:"saved"`
	}](t, e.do(http.MethodGet, "/api/wishlist/items/3", nil))
	assert.True(t, contains.Saved)

	e.do(http.MethodDelete, "/api/wishlist/items/3", nil)
	assert.False(t, e.h.Wishlist.Contains(3))

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPost, "/api/wishlist/toggle", map[string]any{"product_id": 99}).Code)
}

// --- Session ---

type sessionBody struct {
	Loading       bool            `json:"loading"`
	Authenticated bool            `json:"authenticated"`
	User          *models.Session `json:"user"`
}

func TestLogin_FailureKeepsAnonymous(t *testing.T) {
	e := newEnv(t)
	e.provider.LoginErr = identity.NewError(identity.KindInvalidCredential, nil)

	w := e.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "bad-email", "password": "pw"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credential","code":"auth/invalid-credential"}`, w.Body.String())
	s := decode[sessionBody](t, e.do(http.MethodGet, "/api/session", nil))
	assert.False(t, s.Authenticated)
	assert.Nil(t, s.User)
}

func TestIdentityErrorStatuses(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{identity.NewError(identity.KindEmailInUse, nil), http.StatusConflict},
		{identity.NewError(identity.KindWeakPassword, nil), http.StatusBadRequest},
		{identity.NewError(identity.KindInvalidEmail, nil), http.StatusBadRequest},
		{identity.NewError(identity.KindNetwork, nil), http.StatusServiceUnavailable},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		e := newEnv(t)
		e.provider.RegisterErr = tt.err
		w := e.do(http.MethodPost, "/api/auth/register", map[string]any{"name": "A", "email": "a@b.co", "password": "secret1"})
		assert.Equal(t, tt.want, w.Code, tt.err.Error())
	}
}

func TestRegisterLoginLogout(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/auth/register", map[string]any{"name": "Asha", "email": "asha@b.co", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	s := decode[sessionBody](t, w)
	assert.True(t, s.Authenticated)
	require.NotNil(t, s.User.Name)
	assert.Equal(t, "Asha", *s.User.Name)

	s = decode[sessionBody](t, e.do(http.MethodPost, "/api/auth/logout", nil))
	assert.False(t, s.Authenticated)

	s = decode[sessionBody](t, e.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "asha@b.co", "password": "secret1"}))
	assert.True(t, s.Authenticated)
	assert.Equal(t, "user-1", s.User.ID)

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "x"}).Code)
}

// --- Addresses & checkout ---

func TestAddresses(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/account/addresses", map[string]any{
		"name": "Asha", "phone": "9000000000", "street": "1 Rose Lane",
		"city": "Pune", "state": "Maharashtra", "pincode": "411001",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Address](t, w)
	assert.Equal(t, 2, created.ID)
	assert.False(t, created.IsDefault)

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/account/addresses", map[string]any{"name": "x"}).Code)

	list := decode[struct {
		Addresses []models.Address `json:"addresses"`
	}](t, e.do(http.MethodPost, "/api/account/addresses/2/default", nil))
	require.Len(t, list.Addresses, 2)
	assert.False(t, list.Addresses[0].IsDefault)
	assert.True(t, list.Addresses[1].IsDefault)

	updated := decode[models.Address](t, e.do(http.MethodPut, "/api/account/addresses/2", map[string]any{"city": "Nashik"}))
	assert.Equal(t, "Nashik", updated.City)

	assert.Equal(t, http.StatusOK, e.do(http.MethodDelete, "/api/account/addresses/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/account/addresses/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPost, "/api/account/addresses/2/default", nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPut, "/api/account/addresses/2", map[string]any{"city": "x"}).Code)
}

func TestCheckout(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, http.StatusConflict, e.do(http.MethodPost, "/api/checkout/orders", map[string]any{"address_id": 1, "payment_method": "upi"}).Code)

	e.do(http.MethodPost, "/api/cart/items", map[string]any{"product_id": 2})
	summary := decode[struct {
		Count  int            `json:"count"`
		Totals models.Totals  `json:"totals"`
		Ship   models.Address `json:"default_address"`
	}](t, e.do(http.MethodGet, "/api/checkout/summary", nil))
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, models.Totals{Subtotal: 2500, Shipping: 0, Tax: 450, Total: 2950}, summary.Totals)
	assert.Equal(t, 1, summary.Ship.ID)

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/checkout/orders", map[string]any{"address_id": 7, "payment_method": "upi"}).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/checkout/orders", map[string]any{"address_id": 1}).Code)

	w := e.do(http.MethodPost, "/api/checkout/orders", map[string]any{"address_id": 1, "payment_method": "upi"})
	require.Equal(t, http.StatusCreated, w.Code)
	confirmation := decode[models.Confirmation](t, w)
	assert.Equal(t, "Order placed successfully!", confirmation.Message)
	assert.Equal(t, 2950, confirmation.Totals.Total)
	assert.Empty(t, e.h.Cart.Items())
}
