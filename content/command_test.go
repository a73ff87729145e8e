// ABOUTME: Tests for tagged command serialization: discriminator emission,
// ABOUTME: round-trip fidelity, and rejection of unknown command types.
package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCommandRoundTrip(t *testing.T) {
	sections := []AboutSection{{Heading: "Us", Content: "About us."}}
	summary := []string{"fast", "friendly"}

	tests := []struct {
		name string
		cmd  Command
	}{
		{"theme", UpdateThemeCommand{PrimaryColor: strPtr("#112233"), FontMono: strPtr("monospace")}},
		{"home", UpdateHomePageCommand{Headline: strPtr("H"), ServicesSummary: &summary}},
		{"about", UpdateAboutPageCommand{Title: strPtr("T"), Sections: &sections}},
		{"services page", UpdateServicesPageCommand{Introduction: strPtr("intro")}},
		{"blog page", UpdateBlogPageCommand{Title: strPtr("Blog")}},
		{"contact", UpdateContactPageCommand{Email: strPtr("a@b.c")}},
		{"navbar", UpdateNavbarCommand{BrandName: strPtr("Brand")}},
		{"footer", UpdateFooterCommand{CopyrightText: strPtr("c")}},
		{"seo section", UpdateSEOCommand{Section: SectionHomePage, Title: strPtr("t")}},
		{"seo post", UpdateSEOCommand{Section: SectionBlogPosts, PostID: "1", OGImage: strPtr("img")}},
		{"add service", AddServiceCommand{}},
		{"remove service", RemoveServiceCommand{ID: "svc-1"}},
		{"update service", UpdateServiceCommand{ID: "svc-1", Icon: strPtr("wrench")}},
		{"create post", CreateBlogPostCommand{Draft: BlogPostDraft{Title: "New Guide", Summary: "s"}}},
		{"update post", UpdateBlogPostCommand{ID: "1", Slug: strPtr("new-slug")}},
		{"delete post", DeleteBlogPostCommand{ID: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalCommand(tt.cmd)
			if err != nil {
				t.Fatalf("MarshalCommand() error = %v", err)
			}

			var envelope struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(data, &envelope); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if envelope.Type != tt.cmd.CommandType() {
				t.Errorf("type tag = %q, want %q", envelope.Type, tt.cmd.CommandType())
			}

			got, err := UnmarshalCommand(data)
			if err != nil {
				t.Fatalf("UnmarshalCommand() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.cmd) {
				t.Errorf("round trip = %#v, want %#v", got, tt.cmd)
			}
		})
	}
}

func TestUnmarshalCommandUnknownType(t *testing.T) {
	_, err := UnmarshalCommand([]byte(`{"type":"Nope"}`))
	if err == nil {
		t.Fatal("UnmarshalCommand() error = nil, want error")
	}
}

func TestUnmarshalCommandMissingType(t *testing.T) {
	_, err := UnmarshalCommand([]byte(`{"title":"x"}`))
	if err == nil {
		t.Fatal("UnmarshalCommand() error = nil, want error")
	}
}
