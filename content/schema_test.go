// ABOUTME: Tests for the document aggregate: deep-clone independence, JSON round-trip
// ABOUTME: fidelity, and full population of the built-in default document.
package content

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestCloneIndependence(t *testing.T) {
	doc := DefaultDocument()
	clone := doc.Clone()

	if !reflect.DeepEqual(doc, clone) {
		t.Fatal("clone differs from original")
	}

	clone.HomePage.ServicesSummary[0] = "mutated"
	clone.ServicesPage.ServiceList[0].Title = "mutated"
	clone.BlogPosts[0].Slug = "mutated"
	clone.AboutPage.Sections[0].Heading = "mutated"

	if doc.HomePage.ServicesSummary[0] == "mutated" {
		t.Error("ServicesSummary shared between clone and original")
	}
	if doc.ServicesPage.ServiceList[0].Title == "mutated" {
		t.Error("ServiceList shared between clone and original")
	}
	if doc.BlogPosts[0].Slug == "mutated" {
		t.Error("BlogPosts shared between clone and original")
	}
	if doc.AboutPage.Sections[0].Heading == "mutated" {
		t.Error("AboutPage sections shared between clone and original")
	}
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := DefaultDocument()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got WebsiteDocument
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(&got, doc) {
		t.Error("round-tripped document differs from original")
	}
}

func TestDefaultDocumentFullyPopulated(t *testing.T) {
	doc := DefaultDocument()

	if doc.Theme.PrimaryColor == "" {
		t.Error("theme primary color empty")
	}
	if doc.HomePage.Headline == "" || doc.HomePage.SEO.URL == "" {
		t.Error("home page not fully populated")
	}
	if len(doc.ServicesPage.ServiceList) == 0 {
		t.Fatal("no default services")
	}
	for _, svc := range doc.ServicesPage.ServiceList {
		if svc.ID == "" || svc.Title == "" {
			t.Errorf("default service missing id or title: %+v", svc)
		}
	}
	if len(doc.BlogPosts) == 0 {
		t.Fatal("no default blog posts")
	}
	for _, post := range doc.BlogPosts {
		if post.ID == "" || post.Slug == "" {
			t.Errorf("default post missing id or slug: %+v", post)
		}
		if post.SEO.URL != BlogPostURL(post.Slug) {
			t.Errorf("post %s: SEO.URL = %q, want %q", post.ID, post.SEO.URL, BlogPostURL(post.Slug))
		}
	}
	if doc.ContactPage.Phone != SupportPhoneNumber {
		t.Errorf("contact phone = %q, want support constant", doc.ContactPage.Phone)
	}
	if doc.Footer.Phone != SupportPhoneNumber {
		t.Errorf("footer phone = %q, want support constant", doc.Footer.Phone)
	}
	if !strings.Contains(doc.Footer.CopyrightText, "©") {
		t.Errorf("copyright text = %q, want © notice", doc.Footer.CopyrightText)
	}
}

func TestNewDraftPrefills(t *testing.T) {
	draft := NewDraft()

	if draft.Author != DefaultPostAuthor {
		t.Errorf("Author = %q, want %q", draft.Author, DefaultPostAuthor)
	}
	if draft.ImageURL != DefaultPostImageURL {
		t.Errorf("ImageURL = %q, want default", draft.ImageURL)
	}
	if draft.Title != "" {
		t.Errorf("Title = %q, want empty", draft.Title)
	}
	// SEO fields stay empty so creation applies the templated defaults.
	if draft.SEOTitle != "" || draft.SEODescription != "" {
		t.Error("draft pre-filled SEO fields, want empty")
	}
}
