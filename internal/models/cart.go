package models

// CartItem is a cart line keyed by product ID. Price is captured when the
// line is created and never follows later catalog changes.
type CartItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

// LineTotal is price × quantity for this line.
func (i CartItem) LineTotal() int {
	return i.Price * i.Quantity
}

// CartItemFromProduct builds the add-to-cart payload for a product.
func CartItemFromProduct(p Product, size string) CartItem {
	return CartItem{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
		Size:  size,
	}
}
