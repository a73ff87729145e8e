// ABOUTME: Maps theme tokens to named presentation variables and holds the latest set.
// ABOUTME: The holder swaps the whole variable map per document version so reads are atomic.
package projection

import (
	"sort"
	"strings"
	"sync"

	"github.com/brightpath-web/sitewright/content"
)

// ThemeVariableNames lists the eight presentation variables derived from the
// theme's color and font tokens, in publication order.
var ThemeVariableNames = []string{
	"--color-primary",
	"--color-secondary",
	"--color-accent",
	"--color-text-primary",
	"--color-text-secondary",
	"--font-sans",
	"--font-serif",
	"--font-mono",
}

// ThemeVariables maps variable names to token values for one document version.
type ThemeVariables map[string]string

// ProjectTheme derives all theme variables from a document snapshot. Pure.
func ProjectTheme(theme content.ThemeSettings) ThemeVariables {
	return ThemeVariables{
		"--color-primary":        theme.PrimaryColor,
		"--color-secondary":      theme.SecondaryColor,
		"--color-accent":         theme.AccentColor,
		"--color-text-primary":   theme.TextPrimaryColor,
		"--color-text-secondary": theme.TextSecondaryColor,
		"--font-sans":            theme.FontSans,
		"--font-serif":           theme.FontSerif,
		"--font-mono":            theme.FontMono,
	}
}

// CSS renders the variable set as a :root block for inline embedding.
func (v ThemeVariables) CSS() string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(v[name])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// ThemeHolder publishes the latest theme variables. Refresh replaces the whole
// map, so a reader always sees all eight tokens from the same document
// version, never a mix of old and new.
type ThemeHolder struct {
	mu   sync.RWMutex
	vars ThemeVariables
}

// NewThemeHolder initializes the holder from a document.
func NewThemeHolder(doc *content.WebsiteDocument) *ThemeHolder {
	return &ThemeHolder{vars: ProjectTheme(doc.Theme)}
}

// Refresh recomputes the variable set from the given document. The composition
// root calls this after every successful apply.
func (h *ThemeHolder) Refresh(doc *content.WebsiteDocument) {
	vars := ProjectTheme(doc.Theme)
	h.mu.Lock()
	h.vars = vars
	h.mu.Unlock()
}

// Current returns the published variable set.
func (h *ThemeHolder) Current() ThemeVariables {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.vars
}
