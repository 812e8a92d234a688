package ui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shophub/shopfront/internal/session"
	"github.com/shophub/shopfront/internal/shop"
	"github.com/shophub/shopfront/internal/state"
)

func testModel(t *testing.T) Model {
	t.Helper()
	sess, err := session.Load(filepath.Join(t.TempDir(), "session.toml"))
	if err != nil {
		t.Fatalf("session.Load: %v", err)
	}
	m := New(Options{
		Session:   sess,
		Store:     &state.Store{},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m.ready = true
	m.width = 120
	m.height = 40
	return m
}

func testItems() []shop.Item {
	return []shop.Item{
		{ID: 1, Name: "Mechanical Keyboard", Category: "Electronics", Price: 89.99, Rating: 4.2, InStock: true},
		{ID: 2, Name: "Espresso Beans", Description: "dark roast", Category: "Food", Price: 14.50, Rating: 4.8, InStock: true},
		{ID: 3, Name: "USB Cable", Category: "Electronics", Price: 5.99, Rating: 3.9, InStock: false},
	}
}

func TestSortPrefRoundTrip(t *testing.T) {
	keys := []state.SortKey{state.SortName, state.SortPriceAsc, state.SortPriceDesc, state.SortRatingDesc}
	for _, key := range keys {
		if got := sortKeyFromPref(sortPrefValue(key)); got != key {
			t.Fatalf("sortKeyFromPref(sortPrefValue(%v)) = %v", key, got)
		}
	}
	if got := sortKeyFromPref("bogus"); got != state.SortName {
		t.Fatalf("sortKeyFromPref(bogus) = %v, want SortName", got)
	}
}

func TestVisibleItemsAppliesFilterAndSort(t *testing.T) {
	m := testModel(t)
	m.store.SetCatalog(testItems())
	m.refreshSnapshot()

	m.category = "Electronics"
	m.sortKey = state.SortPriceAsc

	items := m.visibleItems()
	if len(items) != 2 {
		t.Fatalf("visibleItems() returned %d items, want 2", len(items))
	}
	if items[0].Name != "USB Cable" || items[1].Name != "Mechanical Keyboard" {
		t.Fatalf("visibleItems() order = [%s %s]", items[0].Name, items[1].Name)
	}

	m.category = state.AllCategories
	m.search.query = "roast"
	items = m.visibleItems()
	if len(items) != 1 || items[0].Name != "Espresso Beans" {
		t.Fatalf("description search returned %v", items)
	}
}

func TestCycleCategoryWraps(t *testing.T) {
	m := testModel(t)
	m.store.SetCatalog(testItems())
	m.refreshSnapshot()

	want := []string{"Electronics", "Food", state.AllCategories}
	for _, expected := range want {
		m.cycleCategory()
		if m.category != expected {
			t.Fatalf("cycleCategory → %q, want %q", m.category, expected)
		}
	}
}

func TestAddSelectedOutOfStock(t *testing.T) {
	m := testModel(t)
	m.store.SetCatalog(testItems())
	m.refreshSnapshot()
	m.catalogRow = 0
	m.sortKey = state.SortPriceAsc
	m.category = "Electronics" // USB Cable first, out of stock

	updated, cmd := m.addSelected(m.visibleItems())
	got := updated.(Model)

	if cmd != nil {
		t.Fatal("addSelected dispatched a command for an out-of-stock item")
	}
	if got.errorMsg == "" {
		t.Fatal("addSelected did not set an error message")
	}
	if got.snapshot.Badge != 0 {
		t.Fatalf("Badge = %d, want 0 (no optimistic bump)", got.snapshot.Badge)
	}
}

func TestAddSelectedBumpsBadgeOptimistically(t *testing.T) {
	m := testModel(t)
	m.store.SetCatalog(testItems())
	m.store.SetEmptyCart()
	m.refreshSnapshot()
	m.catalogRow = 0

	updated, cmd := m.addSelected(m.visibleItems())
	got := updated.(Model)

	if cmd == nil {
		t.Fatal("addSelected did not dispatch a command")
	}
	if got.snapshot.Badge != 1 {
		t.Fatalf("Badge = %d, want 1 after optimistic bump", got.snapshot.Badge)
	}
}

func TestAddDoneErrorRollsBackBadge(t *testing.T) {
	m := testModel(t)
	m.store.SetEmptyCart()
	m.store.BumpBadge(1)
	m.refreshSnapshot()

	updated, _ := m.Update(addDoneMsg{itemID: 1, quantity: 1, err: errors.New("item out of stock")})
	got := updated.(Model)

	if got.snapshot.Badge != 0 {
		t.Fatalf("Badge = %d, want 0 after rollback", got.snapshot.Badge)
	}
	if got.errorMsg != "item out of stock" {
		t.Fatalf("errorMsg = %q", got.errorMsg)
	}
}

func TestLoginDonePersistsSessionAndSwitchesView(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(loginDoneMsg{result: shop.LoginResult{
		Message: "Login successful",
		Token:   "tok-123",
		UserID:  7,
	}})
	got := updated.(Model)

	if got.currentView != ViewCatalog {
		t.Fatalf("currentView = %v, want ViewCatalog", got.currentView)
	}
	if cmd == nil {
		t.Fatal("login success did not dispatch the initial fetches")
	}
	if !got.sess.Authenticated() {
		t.Fatal("session not authenticated after login")
	}
	if got.sess.UserID() != 7 {
		t.Fatalf("UserID = %d, want 7", got.sess.UserID())
	}
}

func TestLoginDoneErrorStaysOnLogin(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(loginDoneMsg{err: errors.New("Invalid username or password")})
	got := updated.(Model)

	if got.currentView != ViewLogin {
		t.Fatalf("currentView = %v, want ViewLogin", got.currentView)
	}
	if got.errorMsg != "Invalid username or password" {
		t.Fatalf("errorMsg = %q", got.errorMsg)
	}
	if got.sess.Authenticated() {
		t.Fatal("session authenticated after failed login")
	}
}

func TestCheckoutDoneSwitchesToOrders(t *testing.T) {
	m := testModel(t)
	m.currentView = ViewCart

	updated, cmd := m.Update(checkoutDoneMsg{result: shop.CheckoutResult{
		Message: "Order placed successfully",
		OrderID: 42,
		Total:   35.00,
	}})
	got := updated.(Model)

	if got.currentView != ViewOrders {
		t.Fatalf("currentView = %v, want ViewOrders", got.currentView)
	}
	if cmd == nil {
		t.Fatal("checkout success did not dispatch refresh commands")
	}
	if got.notice == "" {
		t.Fatal("checkout success did not set a notice")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	m := testModel(t)
	if err := m.sess.Set("tok", 3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	m.store.SetCatalog(testItems())
	m.store.BumpBadge(2)
	m.currentView = ViewCatalog

	updated, _ := m.logout()
	got := updated.(Model)

	if got.currentView != ViewLogin {
		t.Fatalf("currentView = %v, want ViewLogin", got.currentView)
	}
	if got.sess.Authenticated() {
		t.Fatal("session still authenticated after logout")
	}
	if got.snapshot.Badge != 0 {
		t.Fatalf("Badge = %d, want 0 after logout", got.snapshot.Badge)
	}
	if len(got.snapshot.Catalog.Items) != 0 {
		t.Fatal("catalog snapshot survived logout")
	}
}
