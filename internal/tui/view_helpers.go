package tui

import (
	"fmt"
	"strings"
)

const (
	divider    = "──────────────────────────────────────────────────────"
	globalKeys = "f1: about │ ctrl+c: quit"
)

// renderPage frames body between two dividers under an upper-case title and
// appends the page's key hints followed by the global ones.
func renderPage(title, body, keys string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n  %s\n\n", titleStyle.Render(title), divider)

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	for line := range strings.SplitSeq(body, "\n") {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	fmt.Fprintf(&b, "\n  %s\n", divider)
	if strings.TrimSpace(keys) != "" {
		fmt.Fprintf(&b, "  %s\n", helpStyle.Render(keys))
	}
	fmt.Fprintf(&b, "  %s", helpStyle.Render(globalKeys))

	return b.String()
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}
