// ABOUTME: Exports the full WebsiteDocument as a YAML backup for the admin surface.
// ABOUTME: Uses gopkg.in/yaml.v3; section order follows the document's declared field order.
package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/brightpath-web/sitewright/content"
)

// yamlDocument mirrors WebsiteDocument with yaml tags so the backup reads the
// same way the JSON blob does.
type yamlDocument struct {
	Theme        content.ThemeSettings       `yaml:"theme"`
	HomePage     content.HomePageContent     `yaml:"homePage"`
	AboutPage    content.AboutPageContent    `yaml:"aboutPage"`
	ServicesPage content.ServicesPageContent `yaml:"servicesPage"`
	BlogPage     content.BlogPageContent     `yaml:"blogPage"`
	BlogPosts    []content.BlogPost          `yaml:"blogPosts"`
	ContactPage  content.ContactPageContent  `yaml:"contactPage"`
	Footer       content.FooterContent       `yaml:"footer"`
	Navbar       content.NavbarContent       `yaml:"navbar"`
}

// YAML serializes the document as a YAML backup.
func YAML(doc *content.WebsiteDocument) ([]byte, error) {
	out, err := yaml.Marshal(yamlDocument{
		Theme:        doc.Theme,
		HomePage:     doc.HomePage,
		AboutPage:    doc.AboutPage,
		ServicesPage: doc.ServicesPage,
		BlogPage:     doc.BlogPage,
		BlogPosts:    doc.BlogPosts,
		ContactPage:  doc.ContactPage,
		Footer:       doc.Footer,
		Navbar:       doc.Navbar,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal document yaml: %w", err)
	}
	return out, nil
}
