package models

// Totals is the price breakdown shown on the cart and checkout pages.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

// OrderRequest is the final checkout step.
type OrderRequest struct {
	AddressID     int    `json:"address_id"`
	PaymentMethod string `json:"payment_method"`
}

// Confirmation is returned by the order stub. Nothing is persisted.
type Confirmation struct {
	Message   string  `json:"message"`
	ItemCount int     `json:"item_count"`
	Totals    Totals  `json:"totals"`
	ShipTo    Address `json:"ship_to"`
}
