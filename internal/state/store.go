package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/shophub/shopfront/internal/shop"
)

// Catalog is the item-list screen's snapshot.
type Catalog struct {
	Items  []shop.Item
	Loaded bool
}

// CartView is the cart screen's snapshot. Loaded distinguishes "no data
// yet / load failed" from a genuinely empty cart.
type CartView struct {
	Cart   shop.Cart
	Loaded bool
}

// OrderLog is the order-history screen's snapshot.
type OrderLog struct {
	Orders []shop.Order
	Loaded bool
}

// Snapshot is the latest data available to the UI. Badge is the cart
// item count including any optimistic adds that have not yet been
// confirmed by an authoritative cart fetch.
type Snapshot struct {
	Catalog     Catalog
	CartView    CartView
	OrderLog    OrderLog
	Badge       int
	LastError   error
	LastUpdated time.Time
}

// Store coordinates updates to the per-screen snapshots. Each screen's
// data is only ever replaced wholesale by an authoritative fetch; a
// failed load clears the screen's data so stale state never renders as
// current, and a failed mutation touches nothing.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot

	// badgeBase is recomputed from the cart snapshot; badgeBump tracks
	// optimistic add-to-cart increments awaiting confirmation.
	badgeBase int
	badgeBump int
}

// SetCatalog replaces the catalog snapshot.
func (s *Store) SetCatalog(items []shop.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Catalog = Catalog{Items: cloneItems(items), Loaded: true}
	s.touch(nil)
}

// FailCatalog records a failed catalog load. The screen drops to an
// explicit no-data state rather than showing the previous snapshot.
func (s *Store) FailCatalog(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Catalog = Catalog{}
	s.touch(err)
}

// SetCart replaces the cart snapshot with an authoritative fetch. The
// badge is recomputed from the cart and any optimistic delta is
// absorbed, so drift from unconfirmed adds cannot accumulate.
func (s *Store) SetCart(cart shop.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart.Lines = cloneLines(cart.Lines)
	s.snapshot.CartView = CartView{Cart: cart, Loaded: true}
	s.badgeBase = ItemCount(cart)
	s.badgeBump = 0
	s.touch(nil)
}

// SetEmptyCart installs a locally constructed empty cart for the case
// where the server holds no cart for the user yet. Not an error state.
func (s *Store) SetEmptyCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.CartView = CartView{Cart: shop.Cart{}, Loaded: true}
	s.badgeBase = 0
	s.badgeBump = 0
	s.touch(nil)
}

// FailCart records a failed cart load and clears the cart data.
func (s *Store) FailCart(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.CartView = CartView{}
	s.badgeBase = 0
	s.badgeBump = 0
	s.touch(err)
}

// SetOrders replaces the order-history snapshot.
func (s *Store) SetOrders(orders []shop.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.OrderLog = OrderLog{Orders: cloneOrders(orders), Loaded: true}
	s.touch(nil)
}

// FailOrders records a failed order-history load and clears the data.
func (s *Store) FailOrders(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.OrderLog = OrderLog{}
	s.touch(err)
}

// BumpBadge applies the optimistic increment for an add-to-cart that
// has been issued but not yet confirmed.
func (s *Store) BumpBadge(quantity int) {
	if quantity <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badgeBump += quantity
}

// RollbackBadge undoes one optimistic increment after a failed add.
// Without this, a failed add would leave the badge inflated forever.
func (s *Store) RollbackBadge(quantity int) {
	if quantity <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badgeBump -= quantity
	if s.badgeBump < 0 {
		s.badgeBump = 0
	}
}

// Reset drops all snapshots, used on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{}
	s.badgeBase = 0
	s.badgeBump = 0
}

// Snapshot returns a copy of the current snapshots.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog.Items = cloneItems(s.snapshot.Catalog.Items)
	snap.CartView.Cart.Lines = cloneLines(s.snapshot.CartView.Cart.Lines)
	snap.OrderLog.Orders = cloneOrders(s.snapshot.OrderLog.Orders)
	snap.Badge = s.badgeBase + s.badgeBump
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// touch is called with the store lock held.
func (s *Store) touch(err error) {
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

func cloneItems(items []shop.Item) []shop.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]shop.Item, len(items))
	copy(dup, items)
	return dup
}

func cloneLines(lines []shop.CartLine) []shop.CartLine {
	if len(lines) == 0 {
		return nil
	}
	dup := make([]shop.CartLine, len(lines))
	copy(dup, lines)
	return dup
}

func cloneOrders(orders []shop.Order) []shop.Order {
	if len(orders) == 0 {
		return nil
	}
	dup := make([]shop.Order, len(orders))
	copy(dup, orders)
	return dup
}
