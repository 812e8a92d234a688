package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shophub/shopfront/internal/state"
)

func (m *Model) clampCartRow() {
	count := len(m.snapshot.CartView.Cart.Lines)
	if count == 0 {
		m.cartRow = 0
		return
	}
	if m.cartRow >= count {
		m.cartRow = count - 1
	}
	if m.cartRow < 0 {
		m.cartRow = 0
	}
}

// handleCartKey processes keyboard input for the cart view.
func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.snapshot.CartView.Cart.Lines

	switch msg.String() {
	case "esc":
		m.currentView = ViewCatalog
		return m, nil

	case "j", "down":
		if m.cartRow < len(lines)-1 {
			m.cartRow++
		}
	case "k", "up":
		if m.cartRow > 0 {
			m.cartRow--
		}
	case "g", "home":
		m.cartRow = 0
	case "G", "end":
		if len(lines) > 0 {
			m.cartRow = len(lines) - 1
		}

	case "x", "d":
		if m.cartRow < len(lines) {
			m.notice = ""
			m.errorMsg = ""
			return m, removeFromCartCmd(m.ctx, m.client, lines[m.cartRow].ItemID)
		}

	case "C", "enter":
		if len(lines) == 0 {
			m.errorMsg = "Cart is empty"
			return m, nil
		}
		m.notice = ""
		m.errorMsg = ""
		return m, checkoutCmd(m.ctx, m.client)
	}

	return m, nil
}

func (m Model) handleCheckoutDone(msg checkoutDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMsg = msg.err.Error()
		return m, nil
	}

	m.notice = fmt.Sprintf("Order #%d placed, %s", msg.result.OrderID, money(msg.result.Total))
	m.errorMsg = ""
	m.currentView = ViewOrders
	m.ordersRow = 0
	// The server consumed the cart, so both screens need fresh data.
	return m, tea.Batch(
		loadOrdersCmd(m.ctx, m.client, m.store),
		loadCartCmd(m.ctx, m.client, m.store),
	)
}

// renderCart renders the cart lines with the derived total.
func (m Model) renderCart() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2

	if !m.snapshot.CartView.Loaded {
		msg := "Loading cart..."
		style := styles.MutedText
		if m.snapshot.LastError != nil {
			msg = "Couldn't load the cart: " + truncate(m.snapshot.LastError.Error(), 60)
			style = styles.DangerText
		}
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, style.Render(msg))
	}

	cart := m.snapshot.CartView.Cart
	if len(cart.Lines) == 0 {
		empty := styles.MutedText.Render("Your cart is empty") + "\n\n" +
			styles.FaintText.Render("esc: Back to catalog")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
	}

	nameW := 32
	if m.width < 100 {
		nameW = 22
	}

	var b strings.Builder
	header := fmt.Sprintf(" %-*s  %4s  %9s  %9s",
		nameW, "Item", "Qty", "Unit", "Subtotal")
	b.WriteString(styles.FaintText.Render(header))
	b.WriteString("\n")

	rowHeight := contentHeight - 2 // column header + total line
	start, end := windowBounds(len(cart.Lines), rowHeight, m.cartRow)
	for i := start; i < end; i++ {
		line := cart.Lines[i]
		row := fmt.Sprintf(" %-*s  %4d  %9s  %9s",
			nameW, truncate(line.Item.Name, nameW),
			line.Quantity,
			money(line.Price),
			money(line.Price*float64(line.Quantity)))

		if i == m.cartRow {
			b.WriteString(styles.Selected.Width(m.width).Render(row))
		} else {
			b.WriteString(styles.Text.Render(row))
		}
		b.WriteString("\n")
	}

	total := fmt.Sprintf(" %-*s  %4d  %9s  %9s",
		nameW, "Total",
		state.ItemCount(cart),
		"",
		money(state.CartTotal(cart)))
	b.WriteString(styles.PriceText.Render(total))
	return b.String()
}
