// ABOUTME: Public page handlers rendering document snapshots through the projection layer.
// ABOUTME: Unknown blog slugs render the not-found page with a 404 and touch nothing.
package web

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightpath-web/sitewright/content"
	"github.com/brightpath-web/sitewright/projection"
)

// pageData assembles the common payload from a document snapshot and a
// section's SEO record.
func (s *Server) pageData(doc *content.WebsiteDocument, seo content.SEO, data any) PageData {
	head := projection.ProjectHead(seo)
	title := head.Title
	if title == "" {
		title = doc.Navbar.BrandName
	}
	return PageData{
		Title:    title,
		Tags:     head.Tags,
		ThemeCSS: template.CSS(s.theme.Current().CSS()),
		Nav:      projection.ProjectNav(doc.Navbar),
		Footer:   projection.ProjectFooter(doc.Footer),
		Data:     data,
	}
}

func (s *Server) handleHomePage(w http.ResponseWriter, r *http.Request) {
	pageViewsTotal.WithLabelValues("home").Inc()
	doc := s.store.Current()
	data := struct {
		Home     content.HomePageContent
		Services []content.Service
	}{doc.HomePage, doc.ServicesPage.ServiceList}
	s.templates.Render(w, "home", http.StatusOK, s.pageData(doc, doc.HomePage.SEO, data))
}

func (s *Server) handleAboutPage(w http.ResponseWriter, r *http.Request) {
	pageViewsTotal.WithLabelValues("about").Inc()
	doc := s.store.Current()
	s.templates.Render(w, "about", http.StatusOK, s.pageData(doc, doc.AboutPage.SEO, doc.AboutPage))
}

func (s *Server) handleServicesPage(w http.ResponseWriter, r *http.Request) {
	pageViewsTotal.WithLabelValues("services").Inc()
	doc := s.store.Current()
	s.templates.Render(w, "services", http.StatusOK, s.pageData(doc, doc.ServicesPage.SEO, doc.ServicesPage))
}

func (s *Server) handleBlogPage(w http.ResponseWriter, r *http.Request) {
	pageViewsTotal.WithLabelValues("blog").Inc()
	doc := s.store.Current()
	data := struct {
		Page  content.BlogPageContent
		Posts []content.BlogPost
	}{doc.BlogPage, doc.BlogPosts}
	s.templates.Render(w, "blog", http.StatusOK, s.pageData(doc, doc.BlogPage.SEO, data))
}

func (s *Server) handleBlogPostPage(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Current()
	slug := chi.URLParam(r, "slug")

	post, ok := doc.PostBySlug(slug)
	if !ok {
		pageViewsTotal.WithLabelValues("notfound").Inc()
		data := s.pageData(doc, content.SEO{}, nil)
		data.Title = "Post Not Found"
		s.templates.Render(w, "notfound", http.StatusNotFound, data)
		return
	}

	pageViewsTotal.WithLabelValues("post").Inc()
	s.templates.Render(w, "post", http.StatusOK, s.pageData(doc, post.SEO, post))
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	pageViewsTotal.WithLabelValues("contact").Inc()
	doc := s.store.Current()
	s.templates.Render(w, "contact", http.StatusOK, s.pageData(doc, doc.ContactPage.SEO, doc.ContactPage))
}

func (s *Server) handlePrivacyPage(w http.ResponseWriter, r *http.Request) {
	pageViewsTotal.WithLabelValues("privacy").Inc()
	doc := s.store.Current()
	data := struct {
		Heading string
		Body    string
	}{
		Heading: "Privacy Policy",
		Body:    "We collect only the information needed to respond to support requests. Call " + content.SupportPhoneNumber + " with any questions about your data.",
	}
	pd := s.pageData(doc, content.SEO{}, data)
	pd.Title = "Privacy Policy"
	s.templates.Render(w, "simple", http.StatusOK, pd)
}

func (s *Server) handleTermsPage(w http.ResponseWriter, r *http.Request) {
	pageViewsTotal.WithLabelValues("terms").Inc()
	doc := s.store.Current()
	data := struct {
		Heading string
		Body    string
	}{
		Heading: "Terms of Service",
		Body:    "Support services are provided as described on this site. For current terms, call " + content.SupportPhoneNumber + ".",
	}
	pd := s.pageData(doc, content.SEO{}, data)
	pd.Title = "Terms of Service"
	s.templates.Render(w, "simple", http.StatusOK, pd)
}
