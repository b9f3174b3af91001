package models

// WishlistItem is the product summary saved to the wishlist.
type WishlistItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

func WishlistItemFromProduct(p Product) WishlistItem {
	return WishlistItem{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}
}
