// ABOUTME: Derives document-level head metadata from a page's SEO record.
// ABOUTME: Upsert semantics: existing tags update in place, empty source values leave tags untouched.
package projection

import "github.com/brightpath-web/sitewright/content"

// MetaTag is one name/content or property/content head tag.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// HeadTags is the document-level metadata for one rendered page: the title
// plus an ordered tag list.
type HeadTags struct {
	Title string
	Tags  []MetaTag
}

// ApplySEO upserts a page's SEO record into the tag set. Tags whose source
// value is empty are left untouched rather than cleared, and the title only
// changes when the record carries one.
func (h *HeadTags) ApplySEO(seo content.SEO) {
	if seo.Title != "" {
		h.Title = seo.Title
	}
	h.upsertName("description", seo.MetaDescription)
	h.upsertName("keywords", seo.Keywords)
	h.upsertProperty("og:title", seo.OGTitle)
	h.upsertProperty("og:description", seo.OGDescription)
	h.upsertProperty("og:image", seo.OGImage)
}

func (h *HeadTags) upsertName(name, value string) {
	if value == "" {
		return
	}
	for i := range h.Tags {
		if h.Tags[i].Name == name {
			h.Tags[i].Content = value
			return
		}
	}
	h.Tags = append(h.Tags, MetaTag{Name: name, Content: value})
}

func (h *HeadTags) upsertProperty(property, value string) {
	if value == "" {
		return
	}
	for i := range h.Tags {
		if h.Tags[i].Property == property {
			h.Tags[i].Content = value
			return
		}
	}
	h.Tags = append(h.Tags, MetaTag{Property: property, Content: value})
}

// ProjectHead builds a fresh tag set for a page from its SEO record.
func ProjectHead(seo content.SEO) HeadTags {
	var h HeadTags
	h.ApplySEO(seo)
	return h
}
