// ABOUTME: Template loading and rendering for the public pages, parsed once from the embedded FS.
// ABOUTME: Blog bodies that are not already HTML are converted from markdown with goldmark.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/brightpath-web/sitewright/projection"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the common payload every page template receives.
type PageData struct {
	Title    string
	Tags     []projection.MetaTag
	ThemeCSS template.CSS
	Nav      projection.NavView
	Footer   projection.FooterView
	Data     any
}

// TemplateEngine renders named page templates inside the base layout.
type TemplateEngine struct {
	pages map[string]*template.Template
}

// pageNames are the page templates parsed against the base layout.
var pageNames = []string{
	"home", "about", "services", "blog", "post", "contact", "simple", "notfound",
}

// NewTemplateEngine parses all page templates from the embedded FS.
func NewTemplateEngine() (*TemplateEngine, error) {
	funcMap := template.FuncMap{
		"renderBody": renderBody,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS,
			"templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &TemplateEngine{pages: pages}, nil
}

// Render executes a named page template and writes the result.
func (e *TemplateEngine) Render(w http.ResponseWriter, page string, status int, data PageData) {
	tmpl, ok := e.pages[page]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown page template: %s", page), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("component=web action=render_failed page=%s err=%v", page, err)
		http.Error(w, "template render error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderBody turns a post body into HTML. Bodies that already contain HTML
// tags pass through unchanged; everything else is treated as markdown.
// Content is operator-authored, so raw HTML is trusted here.
func renderBody(body string) template.HTML {
	if strings.Contains(body, "</") || strings.Contains(body, "/>") {
		return template.HTML(body)
	}

	var buf bytes.Buffer
	md := goldmark.New()
	if err := md.Convert([]byte(body), &buf); err != nil {
		// Fall back to escaped text on conversion failure.
		return template.HTML(template.HTMLEscapeString(body))
	}
	return template.HTML(buf.String())
}
