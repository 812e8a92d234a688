package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the status bar: logo, screen name, cart badge,
// and whichever transient message is most urgent.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string
	parts = append(parts, bg.Render("ShopHub", styles.Logo))
	parts = append(parts, bg.Render(m.viewLabel(), styles.Text))

	if m.sess != nil && m.sess.Authenticated() {
		parts = append(parts, bg.Render(fmt.Sprintf("user #%d", m.sess.UserID()), styles.MutedText))
	}

	badgeStyle := styles.MutedText
	if m.snapshot.Badge > 0 {
		badgeStyle = styles.WarningText.Bold(true)
	}
	parts = append(parts,
		bg.Render("Cart:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.snapshot.Badge), badgeStyle))

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.FaintText))
	}

	switch {
	case m.errorMsg != "":
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.errorMsg, m.headerMessageWidth()), styles.DangerText))
	case m.snapshot.LastError != nil:
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.snapshot.LastError.Error(), m.headerMessageWidth()), styles.DangerText))
	case m.notice != "":
		parts = append(parts, bg.Render(truncate(m.notice, m.headerMessageWidth()), styles.SuccessText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

func (m Model) viewLabel() string {
	switch m.currentView {
	case ViewCart:
		return "Cart"
	case ViewOrders:
		return "Orders"
	default:
		return "Catalog"
	}
}

func (m Model) headerMessageWidth() int {
	if m.width < 100 {
		return 32
	}
	return 60
}

// renderCommandBar renders the command hints bar for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewCart:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"x", "Remove"},
			{"C", "Checkout"},
			{"o", "Orders"},
			{"r", "Refresh"},
			{"esc", "Catalog"},
		}
	case ViewOrders:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"b", "Cart"},
			{"r", "Refresh"},
			{"esc", "Catalog"},
		}
	default: // ViewCatalog
		commands = []cmd{
			{"/", "Search"},
			{"c", m.category},
			{"s", m.sortKey.Label()},
			{"a", "Add"},
			{"b", "Cart"},
			{"o", "Orders"},
			{"r", "Refresh"},
		}
	}

	commands = append(commands, cmd{"L", "Logout"}, cmd{"q", "Quit"})

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
