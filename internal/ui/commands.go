package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shophub/shopfront/internal/shop"
	"github.com/shophub/shopfront/internal/state"
)

// Messages

type loginDoneMsg struct {
	result shop.LoginResult
	err    error
}

type signupDoneMsg struct {
	result shop.SignupResult
	err    error
}

type catalogLoadedMsg struct {
	err error
}

type cartLoadedMsg struct {
	err error
}

type addDoneMsg struct {
	itemID   uint
	quantity int
	err      error
}

type removeDoneMsg struct {
	itemID uint
	err    error
}

type checkoutDoneMsg struct {
	result shop.CheckoutResult
	err    error
}

type ordersLoadedMsg struct {
	err error
}

// Commands
//
// Each command performs one network call and reconciles the result into
// the store before reporting back. The store is the single source of
// truth; messages only carry what the Update loop needs for navigation
// and notices.

func loginCmd(ctx context.Context, client shop.API, username, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Login(ctx, username, password)
		return loginDoneMsg{result: result, err: err}
	}
}

func signupCmd(ctx context.Context, client shop.API, username, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Signup(ctx, username, password)
		return signupDoneMsg{result: result, err: err}
	}
}

func loadCatalogCmd(ctx context.Context, client shop.API, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		items, err := client.FetchItems(ctx)
		if err != nil {
			store.FailCatalog(err)
			return catalogLoadedMsg{err: err}
		}
		store.SetCatalog(items)
		return catalogLoadedMsg{}
	}
}

// loadCartCmd fetches the authoritative cart. A missing cart on the
// server reconciles to a valid empty cart, not an error.
func loadCartCmd(ctx context.Context, client shop.API, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		cart, err := client.FetchCart(ctx)
		if err != nil {
			if state.IsCartMissing(err) {
				store.SetEmptyCart()
				return cartLoadedMsg{}
			}
			store.FailCart(err)
			return cartLoadedMsg{err: err}
		}
		store.SetCart(cart)
		return cartLoadedMsg{}
	}
}

func addToCartCmd(ctx context.Context, client shop.API, itemID uint, quantity int) tea.Cmd {
	return func() tea.Msg {
		err := client.AddToCart(ctx, itemID, quantity)
		return addDoneMsg{itemID: itemID, quantity: quantity, err: err}
	}
}

func removeFromCartCmd(ctx context.Context, client shop.API, itemID uint) tea.Cmd {
	return func() tea.Msg {
		err := client.RemoveFromCart(ctx, itemID)
		return removeDoneMsg{itemID: itemID, err: err}
	}
}

func checkoutCmd(ctx context.Context, client shop.API) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Checkout(ctx)
		return checkoutDoneMsg{result: result, err: err}
	}
}

func loadOrdersCmd(ctx context.Context, client shop.API, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		orders, err := client.FetchOrders(ctx)
		if err != nil {
			store.FailOrders(err)
			return ordersLoadedMsg{err: err}
		}
		store.SetOrders(orders)
		return ordersLoadedMsg{}
	}
}
