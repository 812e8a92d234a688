// Package ui provides the terminal user interface for shopfront.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. A single root Model owns the active
// screen, the latest state.Snapshot, and transient feedback (notices
// and error messages). All server work happens in tea.Cmd functions
// that call the shop client, reconcile the result into state.Store,
// and deliver a message back to the Update loop.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Root model, Init/Update/View, global key handling, and Run
//   - commands.go: Message types and tea.Cmd wrappers around the shop client
//   - login.go: Credential form for sign-in and account creation
//   - catalog.go: Item list with search, category, and sort controls
//   - cart.go: Cart lines, removal, and checkout
//   - orders.go: Order history with per-order line items
//   - header.go: Status bar and command hints bar
//   - theme.go: Color themes and pre-built lipgloss styles
//
// # Screens
//
// Four screens are available:
//
//   - Login: Username/password form; Ctrl+S toggles account creation
//   - Catalog: Filterable, sortable item list with add-to-cart
//   - Cart: Current cart lines with the derived total and checkout
//   - Orders: Order history with status coloring
//
// # Data Flow
//
//  1. A key press dispatches a tea.Cmd that calls the shop client
//  2. The command reconciles the response into state.Store
//  3. Its completion message reaches Update, which re-reads the snapshot
//  4. View renders purely from the snapshot and local screen state
//
// The cart badge in the header bumps optimistically when an add is
// dispatched and rolls back if the server rejects it; every successful
// mutation is followed by an authoritative cart fetch.
//
// # Key Bindings
//
//   - /: Search the catalog (enter keeps the query, esc clears it)
//   - c: Cycle category filter
//   - s: Cycle sort order (persisted to prefs)
//   - a or Enter: Add the selected item to the cart
//   - b: Cart view
//   - o: Orders view
//   - x or d: Remove the selected cart line
//   - C: Checkout
//   - r: Refresh the current screen
//   - T: Cycle theme (persisted to prefs)
//   - L: Log out
//   - ESC: Back to catalog
//   - q or Ctrl+C: Exit
package ui
