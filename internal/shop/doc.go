// Package shop provides an HTTP client for the ShopHub storefront API.
//
// # Overview
//
// This package defines the transport layer for the storefront client.
// It handles HTTP communication, JSON serialization, bearer-token
// authentication, and type-safe representation of items, carts, and
// orders.
//
// # Client Usage
//
// Create a client from the configured base URL and a session:
//
//	sess, _ := session.Load("")
//	client, err := shop.NewClient("127.0.0.1:8080", sess)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	items, err := client.FetchItems(ctx)
//	if err != nil {
//		log.Printf("catalog fetch failed: %v", err)
//	}
//
// # Endpoints
//
//   - POST /users: register a new account
//   - POST /users/login: exchange credentials for a bearer token
//   - GET /items: full item catalog
//   - POST /items: create a catalog item
//   - POST /carts: add an item to the user's cart
//   - DELETE /carts: remove an item from the user's cart
//   - GET /carts: the user's cart (404 when none exists yet)
//   - POST /orders: create an order from the cart
//   - GET /orders: the user's order history
//
// # Request Handling
//
// All requests use context for cancellation, set JSON content and
// accept headers, carry an X-Request-ID for server-side correlation,
// and attach "Authorization: Bearer <token>" when the session holds a
// token. Each call is a single attempt: no retries, no backoff. The
// http.Client carries a fixed timeout so a dead server cannot hang a
// screen forever.
//
// # Error Handling
//
// Every failure surfaces as a *RequestError. For non-success HTTP
// statuses the message is taken from the server's {"error": "..."}
// payload, falling back to "HTTP error, status <code>" when no message
// can be parsed. Network-level failures carry a zero Status and wrap
// the underlying error. Callers never receive a partially decoded
// success value alongside an error.
//
// # Design Rationale
//
// The client is intentionally minimal: no caching (the state package
// owns snapshots), no retries (the user re-triggers actions), and no
// request deduplication (one request per user action by design).
package shop
