package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) clampOrdersRow() {
	count := len(m.snapshot.OrderLog.Orders)
	if count == 0 {
		m.ordersRow = 0
		return
	}
	if m.ordersRow >= count {
		m.ordersRow = count - 1
	}
	if m.ordersRow < 0 {
		m.ordersRow = 0
	}
}

// handleOrdersKey processes keyboard input for the order history view.
func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	orders := m.snapshot.OrderLog.Orders

	switch msg.String() {
	case "esc":
		m.currentView = ViewCatalog
		return m, nil

	case "j", "down":
		if m.ordersRow < len(orders)-1 {
			m.ordersRow++
		}
	case "k", "up":
		if m.ordersRow > 0 {
			m.ordersRow--
		}
	case "g", "home":
		m.ordersRow = 0
	case "G", "end":
		if len(orders) > 0 {
			m.ordersRow = len(orders) - 1
		}
	}

	return m, nil
}

// renderOrders renders the order history, newest data as the server
// returns it. The selected order also shows its line items.
func (m Model) renderOrders() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2

	if !m.snapshot.OrderLog.Loaded {
		msg := "Loading orders..."
		style := styles.MutedText
		if m.snapshot.LastError != nil {
			msg = "Couldn't load orders: " + truncate(m.snapshot.LastError.Error(), 60)
			style = styles.DangerText
		}
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, style.Render(msg))
	}

	orders := m.snapshot.OrderLog.Orders
	if len(orders) == 0 {
		empty := styles.MutedText.Render("No orders yet") + "\n\n" +
			styles.FaintText.Render("esc: Back to catalog")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
	}

	var b strings.Builder
	header := fmt.Sprintf(" %-8s  %-12s  %9s  %-16s  %s",
		"Order", "Status", "Total", "Placed", "Items")
	b.WriteString(styles.FaintText.Render(header))
	b.WriteString("\n")

	detail := m.renderOrderDetail(styles)
	detailLines := 0
	if detail != "" {
		detailLines = strings.Count(detail, "\n") + 2
	}

	rowHeight := contentHeight - 1 - detailLines
	start, end := windowBounds(len(orders), rowHeight, m.ordersRow)
	for i := start; i < end; i++ {
		order := orders[i]

		placed := ""
		if t := order.ParsedCreatedAt(); !t.IsZero() {
			placed = t.Format("2006-01-02 15:04")
		}

		row := fmt.Sprintf(" %-8s  %-12s  %9s  %-16s  %d",
			fmt.Sprintf("#%d", order.ID),
			titleCase(order.Status),
			money(order.Total),
			placed,
			len(order.Cart.Lines))

		if i == m.ordersRow {
			b.WriteString(styles.Selected.Width(m.width).Render(row))
		} else {
			b.WriteString(styles.StatusStyle(order.Status).Render(row))
		}
		b.WriteString("\n")
	}

	if detail != "" {
		b.WriteString("\n")
		b.WriteString(detail)
	}
	return b.String()
}

// renderOrderDetail lists the line items of the selected order.
func (m Model) renderOrderDetail(styles Styles) string {
	orders := m.snapshot.OrderLog.Orders
	if m.ordersRow >= len(orders) {
		return ""
	}
	order := orders[m.ordersRow]
	if len(order.Cart.Lines) == 0 {
		return ""
	}

	lines := make([]string, 0, len(order.Cart.Lines))
	for _, line := range order.Cart.Lines {
		lines = append(lines, styles.MutedText.Render(
			fmt.Sprintf("   %d × %s  %s",
				line.Quantity,
				truncate(line.Item.Name, 32),
				money(line.Price*float64(line.Quantity)))))
	}
	return strings.Join(lines, "\n")
}
