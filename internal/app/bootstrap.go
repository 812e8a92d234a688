package app

import (
	"context"
	"log"
	"time"

	"github.com/shophub/shopfront/internal/shop"
	"github.com/shophub/shopfront/internal/state"
)

const prefetchTimeout = 5 * time.Second

// Prefetch warms the store with the catalog and cart for a returning
// authenticated user. Failures are logged and recorded in the store;
// the UI starts either way and retries on its own.
func Prefetch(ctx context.Context, store *state.Store, client shop.API) {
	ctx, cancel := context.WithTimeout(ctx, prefetchTimeout)
	defer cancel()

	items, err := client.FetchItems(ctx)
	if err != nil {
		store.FailCatalog(err)
		log.Printf("catalog prefetch failed: %v", err)
	} else {
		store.SetCatalog(items)
	}

	cart, err := client.FetchCart(ctx)
	if err != nil {
		if state.IsCartMissing(err) {
			store.SetEmptyCart()
			return
		}
		store.FailCart(err)
		log.Printf("cart prefetch failed: %v", err)
		return
	}
	store.SetCart(cart)
}
