// Package state is the view-state reconciler for the storefront client.
//
// # Overview
//
// Each screen (catalog, cart, order history) holds an in-memory
// snapshot derived from the last successful fetch. The Store is where
// network results meet the UI: authoritative responses replace a
// screen's snapshot wholesale, failed loads clear it, and derived
// values are recomputed from the snapshot on every read.
//
// # Reconciliation Rules
//
// Loads:
//
//	store.SetCatalog(items)   // replace the whole snapshot
//	store.FailCatalog(err)    // explicit no-data state, never stale
//	store.SetEmptyCart()      // "no cart on server" is empty, not an error
//
// Mutations never patch snapshots locally. Add-to-cart bumps only the
// badge optimistically (BumpBadge before the call, RollbackBadge on
// failure); remove and checkout apply nothing until a refetch lands.
// A failed mutation therefore cannot partially apply: the pre-mutation
// snapshot is untouched by construction.
//
// # Derived Values
//
// Filtering, sorting, cart total, and badge count are pure functions of
// the snapshot and the current inputs (FilterItems, SortItems,
// CartTotal, ItemCount). They are recomputed in full on every change;
// nothing is incrementally patched, so derived state cannot drift from
// its source of truth. The one deliberate exception is the badge's
// optimistic delta, which every authoritative cart fetch absorbs back
// into the recomputed base.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock with defensive copies on both
// update and read, the same producer/consumer arrangement as a polling
// TUI: network completions write, the render loop reads. Snapshots are
// returned by value and safe to hold across renders.
//
// # Testing Considerations
//
// The Store is usable from its zero value and all derivation helpers
// are pure, so tests need no fixtures beyond literal items and carts.
package state
