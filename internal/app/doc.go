// Package app provides the orchestration layer for shopfront.
//
// # Overview
//
// This package wires together configuration, the stored session, the
// shop client, state management, and the UI to create the complete
// shopfront experience. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/shopfront/config.toml
//  2. Load user preferences (theme, sort order)
//  3. Load the stored session token, if any
//  4. Initialize the HTTP client for the ShopHub API
//  5. Create the shared state.Store
//  6. Prefetch catalog and cart for a returning authenticated user
//  7. Start the TUI and block until the user exits or context cancels
//
// # Components
//
//   - app.go: Main Run function
//   - bootstrap.go: Store prefetch for authenticated startup
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Shop client initialization failure (bad API URL)
//
// Recoverable errors (logged, startup continues):
//   - Prefetch failures; the store records them and the UI retries
//   - Missing or corrupt session file; the user just signs in again
//   - Missing or corrupt prefs file; defaults apply
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{
//		ConfigPath: "", // Use default
//	}
//
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("shopfront failed: %v", err)
//	}
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and
// focused. Business logic lives in domain packages (shop, state, ui).
// The app package simply connects these pieces with sensible defaults.
package app
