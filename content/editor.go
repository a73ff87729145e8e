// ABOUTME: Apply is the pure command reducer: it folds one Command into a cloned document.
// ABOUTME: Owns slug resolution, SEO defaulting, id assignment, and the no-op policy for stale ids.
package content

import "time"

// Documented defaults for blog post drafts.
const (
	DefaultPostAuthor   = "Admin"
	DefaultPostImageURL = "https://picsum.photos/800/400?random=8"
)

// ApplyResult carries side outputs of a command: the id assigned by an add or
// create operation, and whether the document actually changed.
type ApplyResult struct {
	NewID   string `json:"newId,omitempty"`
	Changed bool   `json:"changed"`
}

// Apply folds a command into the document and returns the resulting document.
// The input document is never mutated: the result is a deep clone even when
// the command degrades to a no-op. Stale or empty target ids are no-ops by
// contract; only malformed commands return errors.
func Apply(doc *WebsiteDocument, cmd Command) (*WebsiteDocument, ApplyResult, error) {
	next := doc.Clone()
	res := ApplyResult{Changed: true}

	switch c := cmd.(type) {
	case UpdateThemeCommand:
		applyTheme(&next.Theme, c)

	case UpdateHomePageCommand:
		if c.Headline != nil {
			next.HomePage.Headline = *c.Headline
		}
		if c.Tagline != nil {
			next.HomePage.Tagline = *c.Tagline
		}
		if c.ServicesSummary != nil {
			next.HomePage.ServicesSummary = append([]string(nil), *c.ServicesSummary...)
		}
		if c.HeroImageURL != nil {
			next.HomePage.HeroImageURL = *c.HeroImageURL
		}

	case UpdateAboutPageCommand:
		if c.Title != nil {
			next.AboutPage.Title = *c.Title
		}
		if c.Sections != nil {
			next.AboutPage.Sections = append([]AboutSection(nil), *c.Sections...)
		}

	case UpdateServicesPageCommand:
		if c.Title != nil {
			next.ServicesPage.Title = *c.Title
		}
		if c.Introduction != nil {
			next.ServicesPage.Introduction = *c.Introduction
		}

	case UpdateBlogPageCommand:
		if c.Title != nil {
			next.BlogPage.Title = *c.Title
		}
		if c.Introduction != nil {
			next.BlogPage.Introduction = *c.Introduction
		}

	case UpdateContactPageCommand:
		if c.Title != nil {
			next.ContactPage.Title = *c.Title
		}
		if c.FormIntro != nil {
			next.ContactPage.FormIntro = *c.FormIntro
		}
		if c.Address != nil {
			next.ContactPage.Address = *c.Address
		}
		if c.Email != nil {
			next.ContactPage.Email = *c.Email
		}

	case UpdateNavbarCommand:
		applyNavbar(&next.Navbar, c)

	case UpdateFooterCommand:
		if c.CompanyName != nil {
			next.Footer.CompanyName = *c.CompanyName
		}
		if c.PrivacyPolicyLinkText != nil {
			next.Footer.PrivacyPolicyLinkText = *c.PrivacyPolicyLinkText
		}
		if c.TermsOfServiceLinkText != nil {
			next.Footer.TermsOfServiceLinkText = *c.TermsOfServiceLinkText
		}
		if c.CopyrightText != nil {
			next.Footer.CopyrightText = *c.CopyrightText
		}

	case UpdateSEOCommand:
		res.Changed = applySEO(next, c)

	case AddServiceCommand:
		svc := Service{
			ID:          NewServiceID(),
			Title:       "New Service",
			Description: "Description for the new service.",
		}
		next.ServicesPage.ServiceList = append(next.ServicesPage.ServiceList, svc)
		res.NewID = svc.ID

	case RemoveServiceCommand:
		res.Changed = false
		list := next.ServicesPage.ServiceList
		for i, svc := range list {
			if svc.ID == c.ID {
				next.ServicesPage.ServiceList = append(list[:i:i], list[i+1:]...)
				res.Changed = true
				break
			}
		}

	case UpdateServiceCommand:
		res.Changed = false
		for i := range next.ServicesPage.ServiceList {
			svc := &next.ServicesPage.ServiceList[i]
			if svc.ID != c.ID {
				continue
			}
			if c.Title != nil {
				svc.Title = *c.Title
			}
			if c.Description != nil {
				svc.Description = *c.Description
			}
			if c.Icon != nil {
				svc.Icon = *c.Icon
			}
			res.Changed = true
			break
		}

	case CreateBlogPostCommand:
		post, err := finalizeDraft(c.Draft, next.BlogPosts)
		if err != nil {
			return nil, ApplyResult{}, err
		}
		next.BlogPosts = append(next.BlogPosts, post)
		res.NewID = post.ID

	case UpdateBlogPostCommand:
		res.Changed = false
		for i := range next.BlogPosts {
			post := &next.BlogPosts[i]
			if post.ID != c.ID {
				continue
			}
			applyBlogPost(post, c)
			res.Changed = true
			break
		}

	case DeleteBlogPostCommand:
		res.Changed = false
		for i, post := range next.BlogPosts {
			if post.ID == c.ID {
				next.BlogPosts = append(next.BlogPosts[:i:i], next.BlogPosts[i+1:]...)
				res.Changed = true
				break
			}
		}

	default:
		return nil, ApplyResult{}, ErrUnknownCommand
	}

	return next, res, nil
}

func applyTheme(t *ThemeSettings, c UpdateThemeCommand) {
	if c.PrimaryColor != nil {
		t.PrimaryColor = *c.PrimaryColor
	}
	if c.SecondaryColor != nil {
		t.SecondaryColor = *c.SecondaryColor
	}
	if c.AccentColor != nil {
		t.AccentColor = *c.AccentColor
	}
	if c.TextPrimaryColor != nil {
		t.TextPrimaryColor = *c.TextPrimaryColor
	}
	if c.TextSecondaryColor != nil {
		t.TextSecondaryColor = *c.TextSecondaryColor
	}
	if c.FontSans != nil {
		t.FontSans = *c.FontSans
	}
	if c.FontSerif != nil {
		t.FontSerif = *c.FontSerif
	}
	if c.FontMono != nil {
		t.FontMono = *c.FontMono
	}
	if c.HeroImage != nil {
		t.HeroImage = *c.HeroImage
	}
	if c.AboutImage1 != nil {
		t.AboutImage1 = *c.AboutImage1
	}
	if c.AboutImage2 != nil {
		t.AboutImage2 = *c.AboutImage2
	}
	if c.ContactImage != nil {
		t.ContactImage = *c.ContactImage
	}
}

func applyNavbar(n *NavbarContent, c UpdateNavbarCommand) {
	if c.BrandName != nil {
		n.BrandName = *c.BrandName
	}
	if c.HomeLinkText != nil {
		n.HomeLinkText = *c.HomeLinkText
	}
	if c.AboutLinkText != nil {
		n.AboutLinkText = *c.AboutLinkText
	}
	if c.ServicesLinkText != nil {
		n.ServicesLinkText = *c.ServicesLinkText
	}
	if c.BlogLinkText != nil {
		n.BlogLinkText = *c.BlogLinkText
	}
	if c.ContactLinkText != nil {
		n.ContactLinkText = *c.ContactLinkText
	}
	if c.AdminLinkText != nil {
		n.AdminLinkText = *c.AdminLinkText
	}
}

// applySEO updates the SEO record of the addressed section. Returns false when
// the command addressed a blog post without a usable id. URL is never touched:
// it stays the canonical route path.
func applySEO(next *WebsiteDocument, c UpdateSEOCommand) bool {
	var target *SEO

	switch c.Section {
	case SectionHomePage:
		target = &next.HomePage.SEO
	case SectionAboutPage:
		target = &next.AboutPage.SEO
	case SectionServicesPage:
		target = &next.ServicesPage.SEO
	case SectionBlogPage:
		target = &next.BlogPage.SEO
	case SectionContactPage:
		target = &next.ContactPage.SEO
	case SectionBlogPosts:
		if c.PostID == "" {
			return false
		}
		for i := range next.BlogPosts {
			if next.BlogPosts[i].ID == c.PostID {
				target = &next.BlogPosts[i].SEO
				break
			}
		}
		if target == nil {
			return false
		}
	default:
		return false
	}

	if c.Title != nil {
		target.Title = *c.Title
	}
	if c.MetaDescription != nil {
		target.MetaDescription = *c.MetaDescription
	}
	if c.Keywords != nil {
		target.Keywords = *c.Keywords
	}
	if c.OGTitle != nil {
		target.OGTitle = *c.OGTitle
	}
	if c.OGDescription != nil {
		target.OGDescription = *c.OGDescription
	}
	if c.OGImage != nil {
		target.OGImage = *c.OGImage
	}
	return true
}

// finalizeDraft resolves a draft into a complete post: slug from the draft or
// derived from the title, made unique against existing posts; seo.url bound to
// the resolved slug; documented defaults for everything else.
func finalizeDraft(draft BlogPostDraft, existing []BlogPost) (BlogPost, error) {
	if draft.Title == "" {
		return BlogPost{}, ErrDraftTitleRequired
	}

	slug := draft.Slug
	if slug == "" {
		slug = Slugify(draft.Title)
	}
	slug = uniqueSlug(slug, existing)

	post := BlogPost{
		ID:       NewBlogPostID(),
		Slug:     slug,
		Title:    draft.Title,
		Author:   draft.Author,
		Date:     draft.Date,
		Summary:  draft.Summary,
		Content:  draft.Content,
		ImageURL: draft.ImageURL,
		SEO: SEO{
			URL:             BlogPostURL(slug),
			Title:           draft.SEOTitle,
			MetaDescription: draft.SEODescription,
		},
	}

	if post.Author == "" {
		post.Author = DefaultPostAuthor
	}
	if post.Date == "" {
		post.Date = time.Now().UTC().Format("2006-01-02")
	}
	if post.ImageURL == "" {
		post.ImageURL = DefaultPostImageURL
	}
	if post.SEO.Title == "" {
		post.SEO.Title = post.Title + " – Call " + SupportPhoneNumber
	}
	if post.SEO.MetaDescription == "" {
		post.SEO.MetaDescription = "Read about " + post.Title + ". For live support, call " + SupportPhoneNumber + "."
	}

	return post, nil
}

// applyBlogPost folds an update into one post. A slug change recomputes
// seo.url so the canonical path never goes stale.
func applyBlogPost(post *BlogPost, c UpdateBlogPostCommand) {
	if c.Slug != nil && *c.Slug != post.Slug {
		post.Slug = *c.Slug
		post.SEO.URL = BlogPostURL(post.Slug)
	}
	if c.Title != nil {
		post.Title = *c.Title
	}
	if c.Author != nil {
		post.Author = *c.Author
	}
	if c.Date != nil {
		post.Date = *c.Date
	}
	if c.Summary != nil {
		post.Summary = *c.Summary
	}
	if c.Content != nil {
		post.Content = *c.Content
	}
	if c.ImageURL != nil {
		post.ImageURL = *c.ImageURL
	}
}
