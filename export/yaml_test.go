// ABOUTME: Tests for the YAML backup export: section presence and value fidelity.
package export

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/brightpath-web/sitewright/content"
)

func TestYAMLExport(t *testing.T) {
	doc := content.DefaultDocument()

	out, err := YAML(doc)
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	text := string(out)
	for _, section := range []string{"theme:", "homePage:", "aboutPage:", "servicesPage:", "blogPage:", "blogPosts:", "contactPage:", "footer:", "navbar:"} {
		if !strings.Contains(text, section) {
			t.Errorf("export missing section %q", section)
		}
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}

	home, ok := parsed["homePage"].(map[string]any)
	if !ok {
		t.Fatal("homePage is not a mapping")
	}
	if home["headline"] != doc.HomePage.Headline {
		t.Errorf("headline = %v, want %q", home["headline"], doc.HomePage.Headline)
	}
}
