package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Slate" || names[1] != "Nightfox" || names[2] != "Kanagawa" {
		t.Fatalf("ThemeNames() = %v, want [Slate Nightfox Kanagawa]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Kanagawa"); got != "Slate" {
		t.Fatalf("NextTheme(Kanagawa) = %q, want Slate", got)
	}
	if got := NextTheme("Unknown"); got != "Slate" {
		t.Fatalf("NextTheme(Unknown) = %q, want Slate", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got.Name, name)
		}
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Slate" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Slate (fallback)", unknown.Name)
	}
}

func TestStatusStyleFallsBackToMuted(t *testing.T) {
	styles := GetTheme("Slate").Styles()

	known := styles.StatusStyle("pending").GetForeground()
	unknown := styles.StatusStyle("mystery").GetForeground()
	muted := styles.MutedText.GetForeground()

	if known == unknown {
		t.Fatalf("pending and unknown statuses share foreground %v", known)
	}
	if unknown != muted {
		t.Fatalf("unknown status foreground = %v, want muted %v", unknown, muted)
	}
}

func TestThemesCoverOrderStatuses(t *testing.T) {
	statuses := []string{"pending", "processing", "shipped", "delivered", "completed", "cancelled"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range statuses {
			if th.StatusColors[status] == "" {
				t.Fatalf("theme %s has no color for status %q", name, status)
			}
		}
	}
}
