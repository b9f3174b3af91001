// Package checkout prices the cart and places the (unpaid) order.
package checkout

import (
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"rosegold_back_end/internal/address"
	"rosegold_back_end/internal/cart"
	"rosegold_back_end/internal/models"
)

const (
	FreeShippingAbove = 2000
	ShippingFee       = 99

	OrderPlacedMessage = "Order placed successfully!"
)

var taxRate = decimal.RequireFromString("0.18")

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrAddressRequired = errors.New("please select a delivery address")
	ErrPaymentRequired = errors.New("please select a payment method")
)

// Shipping is free strictly above FreeShippingAbove.
func Shipping(subtotal int) int {
	if subtotal > FreeShippingAbove {
		return 0
	}
	return ShippingFee
}

// Tax is 18% of the subtotal rounded to the nearest rupee, halves up.
func Tax(subtotal int) int {
	return int(decimal.NewFromInt(int64(subtotal)).Mul(taxRate).Round(0).IntPart())
}

// CartTotals is the cart page summary: no tax line.
func CartTotals(subtotal int) models.Totals {
	shipping := Shipping(subtotal)
	return models.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// OrderTotals is the checkout summary including tax.
func OrderTotals(subtotal int) models.Totals {
	shipping := Shipping(subtotal)
	tax := Tax(subtotal)
	return models.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// PlaceOrder validates the request against the current cart and address
// book, then takes every line out of the cart. Nothing is charged or stored.
func PlaceOrder(c *cart.Store, book *address.Book, req models.OrderRequest) (models.Confirmation, error) {
	if len(c.Items()) == 0 {
		return models.Confirmation{}, ErrEmptyCart
	}
	shipTo, ok := book.Get(req.AddressID)
	if !ok {
		return models.Confirmation{}, ErrAddressRequired
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return models.Confirmation{}, ErrPaymentRequired
	}

	// The order covers exactly the lines taken out of the cart.
	items := c.Drain()
	if len(items) == 0 {
		return models.Confirmation{}, ErrEmptyCart
	}
	subtotal := 0
	count := 0
	for _, item := range items {
		subtotal += item.LineTotal()
		count += item.Quantity
	}

	confirmation := models.Confirmation{
		Message:   OrderPlacedMessage,
		ItemCount: count,
		Totals:    OrderTotals(subtotal),
		ShipTo:    shipTo,
	}

	log.Printf("🛍️ Order placed: %d items, total %d, ship to %s", count, confirmation.Totals.Total, shipTo.City)
	return confirmation, nil
}
