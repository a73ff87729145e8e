// ABOUTME: Tests for theme variable projection: full token coverage, CSS rendering,
// ABOUTME: and whole-set holder refresh.
package projection

import (
	"strings"
	"testing"

	"github.com/brightpath-web/sitewright/content"
)

func TestProjectThemeCoversAllVariables(t *testing.T) {
	doc := content.DefaultDocument()
	vars := ProjectTheme(doc.Theme)

	if len(vars) != len(ThemeVariableNames) {
		t.Fatalf("variable count = %d, want %d", len(vars), len(ThemeVariableNames))
	}
	for _, name := range ThemeVariableNames {
		if _, ok := vars[name]; !ok {
			t.Errorf("missing variable %s", name)
		}
	}
	if vars["--color-primary"] != doc.Theme.PrimaryColor {
		t.Errorf("--color-primary = %q, want %q", vars["--color-primary"], doc.Theme.PrimaryColor)
	}
	if vars["--font-mono"] != doc.Theme.FontMono {
		t.Errorf("--font-mono = %q, want %q", vars["--font-mono"], doc.Theme.FontMono)
	}
}

func TestThemeVariablesCSS(t *testing.T) {
	vars := ThemeVariables{
		"--color-primary": "#112233",
		"--font-sans":     "sans-serif",
	}
	css := vars.CSS()

	if !strings.HasPrefix(css, ":root {") {
		t.Errorf("CSS() = %q, want :root block", css)
	}
	if !strings.Contains(css, "--color-primary: #112233;") {
		t.Errorf("CSS() missing primary color: %q", css)
	}
	if !strings.Contains(css, "--font-sans: sans-serif;") {
		t.Errorf("CSS() missing sans font: %q", css)
	}
}

func TestThemeHolderRefreshSwapsWholeSet(t *testing.T) {
	doc := content.DefaultDocument()
	holder := NewThemeHolder(doc)

	before := holder.Current()
	if before["--color-primary"] != doc.Theme.PrimaryColor {
		t.Fatalf("initial --color-primary = %q, want %q", before["--color-primary"], doc.Theme.PrimaryColor)
	}

	next := doc.Clone()
	next.Theme.PrimaryColor = "#000000"
	next.Theme.FontSans = "Inter"
	holder.Refresh(next)

	after := holder.Current()
	if after["--color-primary"] != "#000000" {
		t.Errorf("--color-primary = %q, want #000000", after["--color-primary"])
	}
	if after["--font-sans"] != "Inter" {
		t.Errorf("--font-sans = %q, want Inter", after["--font-sans"])
	}
	if len(after) != len(ThemeVariableNames) {
		t.Errorf("variable count after refresh = %d, want %d", len(after), len(ThemeVariableNames))
	}

	// The previously read set must be unaffected by the refresh.
	if before["--color-primary"] != doc.Theme.PrimaryColor {
		t.Error("refresh mutated a previously published variable set")
	}
}
