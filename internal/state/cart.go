package state

import (
	"errors"
	"strings"

	"github.com/shophub/shopfront/internal/shop"
)

// IsCartMissing reports whether a cart fetch failed only because the
// server holds no cart for the user yet. That case reconciles to an
// empty cart rather than an error. Detection prefers the structured
// 404 status; the message match is kept as a fallback because some
// deployments front the API with proxies that rewrite statuses.
func IsCartMissing(err error) bool {
	var reqErr *shop.RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	if reqErr.NotFound() {
		return true
	}
	return strings.Contains(reqErr.Message, "Cart not found")
}

// CartTotal sums unit price times quantity across all cart lines.
// Always computed fresh from the snapshot, never cached.
func CartTotal(cart shop.Cart) float64 {
	var total float64
	for _, line := range cart.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount sums the quantities across all cart lines.
func ItemCount(cart shop.Cart) int {
	var count int
	for _, line := range cart.Lines {
		count += line.Quantity
	}
	return count
}
