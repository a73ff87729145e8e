// ABOUTME: Deterministic slug derivation from post titles plus collision suffixing.
// ABOUTME: Slugify lower-cases, collapses non-alphanumeric runs to hyphens, and trims.
package content

import (
	"strconv"
	"strings"
)

// Slugify derives a URL-safe slug from a title: lower-case, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Pure function of the title alone.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// uniqueSlug returns slug unchanged when no existing post uses it, otherwise
// appends -2, -3, ... until unique. Deterministic for a given post list.
func uniqueSlug(slug string, posts []BlogPost) string {
	taken := make(map[string]bool, len(posts))
	for _, p := range posts {
		taken[p.Slug] = true
	}
	if !taken[slug] {
		return slug
	}
	for n := 2; ; n++ {
		candidate := slug + "-" + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate
		}
	}
}

// BlogPostURL is the canonical route path for a post with the given slug.
func BlogPostURL(slug string) string {
	return "/blog/" + slug
}
