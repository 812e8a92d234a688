package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shophub/shopfront/internal/shop"
	"github.com/shophub/shopfront/internal/state"
)

// searchState holds the catalog search input. The query filters live
// while typing; enter keeps it, esc drops it.
type searchState struct {
	input  textinput.Model
	active bool
	query  string
}

func newSearchState() searchState {
	input := textinput.New()
	input.Placeholder = "name or description"
	input.Prompt = "/"
	input.CharLimit = 64
	input.Width = 32
	return searchState{input: input}
}

// sortKeyFromPref maps the persisted sort name to its key. Unknown
// values fall back to name order rather than erroring.
func sortKeyFromPref(name string) state.SortKey {
	switch name {
	case "price-low":
		return state.SortPriceAsc
	case "price-high":
		return state.SortPriceDesc
	case "rating":
		return state.SortRatingDesc
	default:
		return state.SortName
	}
}

// sortPrefValue maps a sort key to the name stored in prefs.
func sortPrefValue(key state.SortKey) string {
	switch key {
	case state.SortPriceAsc:
		return "price-low"
	case state.SortPriceDesc:
		return "price-high"
	case state.SortRatingDesc:
		return "rating"
	default:
		return "name"
	}
}

// visibleItems derives the rendered catalog from the snapshot. Filter
// and sort never touch the snapshot itself.
func (m Model) visibleItems() []shop.Item {
	filtered := state.FilterItems(m.snapshot.Catalog.Items, m.search.query, m.category)
	return state.SortItems(filtered, m.sortKey)
}

func (m *Model) clampCatalogRow() {
	count := len(m.visibleItems())
	if count == 0 {
		m.catalogRow = 0
		return
	}
	if m.catalogRow >= count {
		m.catalogRow = count - 1
	}
	if m.catalogRow < 0 {
		m.catalogRow = 0
	}
}

// cycleCategory advances to the next category, wrapping back to "All".
func (m *Model) cycleCategory() {
	cats := state.Categories(m.snapshot.Catalog.Items)
	for i, c := range cats {
		if c == m.category {
			m.category = cats[(i+1)%len(cats)]
			m.catalogRow = 0
			return
		}
	}
	m.category = state.AllCategories
	m.catalogRow = 0
}

// handleCatalogKey processes keyboard input for the catalog view.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.visibleItems()

	switch msg.String() {
	case "/":
		m.search.active = true
		m.search.input.Focus()
		return m, textinput.Blink

	case "c":
		m.cycleCategory()
		return m, nil

	case "s":
		m.sortKey = m.sortKey.Next()
		m.savePrefs()
		return m, nil

	case "j", "down":
		if m.catalogRow < len(items)-1 {
			m.catalogRow++
		}
	case "k", "up":
		if m.catalogRow > 0 {
			m.catalogRow--
		}
	case "g", "home":
		m.catalogRow = 0
	case "G", "end":
		if len(items) > 0 {
			m.catalogRow = len(items) - 1
		}

	case "a", "enter":
		return m.addSelected(items)
	}

	return m, nil
}

// addSelected issues an optimistic add for the highlighted item. The
// badge bumps immediately; the confirming cart fetch or a rollback
// follows when the server answers.
func (m Model) addSelected(items []shop.Item) (tea.Model, tea.Cmd) {
	if m.catalogRow >= len(items) {
		return m, nil
	}
	item := items[m.catalogRow]
	if !item.InStock {
		m.errorMsg = item.Name + " is out of stock"
		return m, nil
	}

	m.store.BumpBadge(1)
	m.refreshSnapshot()
	m.notice = ""
	m.errorMsg = ""
	return m, addToCartCmd(m.ctx, m.client, item.ID, 1)
}

// handleSearchKey processes keyboard input while the search box is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.active = false
		m.search.input.Blur()
		return m, nil

	case "esc":
		m.search.active = false
		m.search.query = ""
		m.search.input.Blur()
		m.search.input.SetValue("")
		m.clampCatalogRow()
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.search.query = m.search.input.Value()
	m.catalogRow = 0
	return m, cmd
}

// renderCatalog renders the item list with the active filter summary.
func (m Model) renderCatalog() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2 // header + cmdbar

	if !m.snapshot.Catalog.Loaded {
		msg := "Loading catalog..."
		style := styles.MutedText
		if m.snapshot.LastError != nil {
			msg = "Couldn't load the catalog: " + truncate(m.snapshot.LastError.Error(), 60)
			style = styles.DangerText
		}
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, style.Render(msg))
	}

	items := m.visibleItems()

	var b strings.Builder
	b.WriteString(m.renderCatalogFilterLine(styles, len(items)))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(styles.MutedText.Render(" No items match"))
		return b.String()
	}

	nameW := 32
	if m.width < 100 {
		nameW = 22
	}

	header := fmt.Sprintf(" %-*s  %-14s  %9s  %-12s  %s",
		nameW, "Item", "Category", "Price", "Rating", "Stock")
	b.WriteString(styles.FaintText.Render(header))
	b.WriteString("\n")

	rowHeight := contentHeight - 2 // filter line + column header
	start, end := windowBounds(len(items), rowHeight, m.catalogRow)
	for i := start; i < end; i++ {
		b.WriteString(m.renderCatalogRow(styles, items[i], nameW, i == m.catalogRow))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderCatalogFilterLine(styles Styles, count int) string {
	parts := []string{
		styles.MutedText.Render(" Category:") + " " + styles.AccentText.Render(m.category),
		styles.MutedText.Render("Sort:") + " " + styles.AccentText.Render(m.sortKey.Label()),
	}

	if m.search.active {
		parts = append(parts, m.search.input.View())
	} else if m.search.query != "" {
		parts = append(parts, styles.AccentText.Render("/"+truncate(m.search.query, 18)))
	}

	parts = append(parts, styles.FaintText.Render(fmt.Sprintf("%d items", count)))
	return strings.Join(parts, "  ")
}

func (m Model) renderCatalogRow(styles Styles, item shop.Item, nameW int, selected bool) string {
	stock := "in stock"
	if !item.InStock {
		stock = "out of stock"
	}

	line := fmt.Sprintf(" %-*s  %-14s  %9s  %-12s  %s",
		nameW, truncate(item.Name, nameW),
		truncate(item.Category, 14),
		money(item.Price),
		rating(item.Rating, item.Reviews),
		stock)

	if selected {
		return styles.Selected.Width(m.width).Render(line)
	}
	if !item.InStock {
		return styles.FaintText.Render(line)
	}
	return styles.Text.Render(line)
}
