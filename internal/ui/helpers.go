package ui

import (
	"fmt"
	"strings"
)

// money formats a price the way the storefront shows it.
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// rating formats an item rating with its review count.
func rating(value float64, reviews int) string {
	return fmt.Sprintf("★ %.1f (%d)", value, reviews)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// windowBounds returns the half-open row range to render so the
// selection stays visible inside a list taller than the screen.
func windowBounds(total, visible, selected int) (start, end int) {
	if visible <= 0 || total <= visible {
		return 0, total
	}
	start = selected - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > total {
		start = total - visible
	}
	return start, start + visible
}

// titleCase converts a lowercase status string to Title Case.
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
