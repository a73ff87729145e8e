// ABOUTME: Command is a tagged union representing all mutations to the website document.
// ABOUTME: Per-section typed partial updates with a "type" JSON discriminator; pointer fields mean "replace this leaf".
package content

import (
	"encoding/json"
	"fmt"
)

// Command represents a mutation intent for the website document. Tagged union;
// each variant scopes its update to one section.
type Command interface {
	CommandType() string
	commandSeal()
}

// UpdateThemeCommand replaces leaf fields of the theme section.
type UpdateThemeCommand struct {
	PrimaryColor       *string `json:"primaryColor,omitempty"`
	SecondaryColor     *string `json:"secondaryColor,omitempty"`
	AccentColor        *string `json:"accentColor,omitempty"`
	TextPrimaryColor   *string `json:"textPrimaryColor,omitempty"`
	TextSecondaryColor *string `json:"textSecondaryColor,omitempty"`
	FontSans           *string `json:"fontSans,omitempty"`
	FontSerif          *string `json:"fontSerif,omitempty"`
	FontMono           *string `json:"fontMono,omitempty"`
	HeroImage          *string `json:"heroImage,omitempty"`
	AboutImage1        *string `json:"aboutImage1,omitempty"`
	AboutImage2        *string `json:"aboutImage2,omitempty"`
	ContactImage       *string `json:"contactImage,omitempty"`
}

func (c UpdateThemeCommand) CommandType() string { return "UpdateTheme" }
func (c UpdateThemeCommand) commandSeal()        {}

// UpdateHomePageCommand replaces leaf fields of the home page section.
type UpdateHomePageCommand struct {
	Headline        *string   `json:"headline,omitempty"`
	Tagline         *string   `json:"tagline,omitempty"`
	ServicesSummary *[]string `json:"servicesSummary,omitempty"`
	HeroImageURL    *string   `json:"heroImageUrl,omitempty"`
}

func (c UpdateHomePageCommand) CommandType() string { return "UpdateHomePage" }
func (c UpdateHomePageCommand) commandSeal()        {}

// UpdateAboutPageCommand replaces leaf fields of the about page section,
// including wholesale replacement of the section block list.
type UpdateAboutPageCommand struct {
	Title    *string         `json:"title,omitempty"`
	Sections *[]AboutSection `json:"sections,omitempty"`
}

func (c UpdateAboutPageCommand) CommandType() string { return "UpdateAboutPage" }
func (c UpdateAboutPageCommand) commandSeal()        {}

// UpdateServicesPageCommand replaces the services page title/introduction.
// The service list itself is managed by the service item commands.
type UpdateServicesPageCommand struct {
	Title        *string `json:"title,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
}

func (c UpdateServicesPageCommand) CommandType() string { return "UpdateServicesPage" }
func (c UpdateServicesPageCommand) commandSeal()        {}

// UpdateBlogPageCommand replaces the blog listing page title/introduction.
type UpdateBlogPageCommand struct {
	Title        *string `json:"title,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
}

func (c UpdateBlogPageCommand) CommandType() string { return "UpdateBlogPage" }
func (c UpdateBlogPageCommand) commandSeal()        {}

// UpdateContactPageCommand replaces leaf fields of the contact page section.
// Phone is deliberately absent: it mirrors the support-contact constant.
type UpdateContactPageCommand struct {
	Title     *string `json:"title,omitempty"`
	FormIntro *string `json:"formIntro,omitempty"`
	Address   *string `json:"address,omitempty"`
	Email     *string `json:"email,omitempty"`
}

func (c UpdateContactPageCommand) CommandType() string { return "UpdateContactPage" }
func (c UpdateContactPageCommand) commandSeal()        {}

// UpdateNavbarCommand replaces navbar labels.
type UpdateNavbarCommand struct {
	BrandName        *string `json:"brandName,omitempty"`
	HomeLinkText     *string `json:"homeLinkText,omitempty"`
	AboutLinkText    *string `json:"aboutLinkText,omitempty"`
	ServicesLinkText *string `json:"servicesLinkText,omitempty"`
	BlogLinkText     *string `json:"blogLinkText,omitempty"`
	ContactLinkText  *string `json:"contactLinkText,omitempty"`
	AdminLinkText    *string `json:"adminLinkText,omitempty"`
}

func (c UpdateNavbarCommand) CommandType() string { return "UpdateNavbar" }
func (c UpdateNavbarCommand) commandSeal()        {}

// UpdateFooterCommand replaces footer labels. Phone is deliberately absent.
type UpdateFooterCommand struct {
	CompanyName            *string `json:"companyName,omitempty"`
	PrivacyPolicyLinkText  *string `json:"privacyPolicyLinkText,omitempty"`
	TermsOfServiceLinkText *string `json:"termsOfServiceLinkText,omitempty"`
	CopyrightText          *string `json:"copyrightText,omitempty"`
}

func (c UpdateFooterCommand) CommandType() string { return "UpdateFooter" }
func (c UpdateFooterCommand) commandSeal()        {}

// Section names a top-level SEO-bearing target for UpdateSEOCommand.
type Section string

// SEO-bearing sections. Navbar and footer own no SEO record and are not listed.
const (
	SectionHomePage     Section = "homePage"
	SectionAboutPage    Section = "aboutPage"
	SectionServicesPage Section = "servicesPage"
	SectionBlogPage     Section = "blogPage"
	SectionContactPage  Section = "contactPage"
	SectionBlogPosts    Section = "blogPosts"
)

// UpdateSEOCommand replaces fields of a section's SEO sub-record. For the
// blogPosts section PostID selects the target post (taken from the editor
// mode); an empty or stale PostID makes the command a no-op. URL is absent:
// it is derived, never edited directly.
type UpdateSEOCommand struct {
	Section         Section `json:"section"`
	PostID          string  `json:"postId,omitempty"`
	Title           *string `json:"title,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	Keywords        *string `json:"keywords,omitempty"`
	OGTitle         *string `json:"ogTitle,omitempty"`
	OGDescription   *string `json:"ogDescription,omitempty"`
	OGImage         *string `json:"ogImage,omitempty"`
}

func (c UpdateSEOCommand) CommandType() string { return "UpdateSEO" }
func (c UpdateSEOCommand) commandSeal()        {}

// AddServiceCommand appends a new placeholder service with a fresh id.
type AddServiceCommand struct{}

func (c AddServiceCommand) CommandType() string { return "AddService" }
func (c AddServiceCommand) commandSeal()        {}

// RemoveServiceCommand removes the service with the given id; no-op if absent.
type RemoveServiceCommand struct {
	ID string `json:"id"`
}

func (c RemoveServiceCommand) CommandType() string { return "RemoveService" }
func (c RemoveServiceCommand) commandSeal()        {}

// UpdateServiceCommand replaces fields of the service with the given id;
// no-op if absent.
type UpdateServiceCommand struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

func (c UpdateServiceCommand) CommandType() string { return "UpdateService" }
func (c UpdateServiceCommand) commandSeal()        {}

// BlogPostDraft is the partial input to CreateBlogPostCommand. Title is
// required; every other field has a documented default.
type BlogPostDraft struct {
	Title          string `json:"title"`
	Slug           string `json:"slug,omitempty"`
	Author         string `json:"author,omitempty"`
	Date           string `json:"date,omitempty"`
	Summary        string `json:"summary,omitempty"`
	Content        string `json:"content,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	SEOTitle       string `json:"seoTitle,omitempty"`
	SEODescription string `json:"seoDescription,omitempty"`
}

// CreateBlogPostCommand finalizes a draft into a new post appended to blogPosts.
type CreateBlogPostCommand struct {
	Draft BlogPostDraft `json:"draft"`
}

func (c CreateBlogPostCommand) CommandType() string { return "CreateBlogPost" }
func (c CreateBlogPostCommand) commandSeal()        {}

// UpdateBlogPostCommand replaces fields of the post with the given id; no-op
// if absent. A slug change recomputes the post's seo.url.
type UpdateBlogPostCommand struct {
	ID       string  `json:"id"`
	Slug     *string `json:"slug,omitempty"`
	Title    *string `json:"title,omitempty"`
	Author   *string `json:"author,omitempty"`
	Date     *string `json:"date,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (c UpdateBlogPostCommand) CommandType() string { return "UpdateBlogPost" }
func (c UpdateBlogPostCommand) commandSeal()        {}

// DeleteBlogPostCommand removes the post with the given id; no-op if absent.
type DeleteBlogPostCommand struct {
	ID string `json:"id"`
}

func (c DeleteBlogPostCommand) CommandType() string { return "DeleteBlogPost" }
func (c DeleteBlogPostCommand) commandSeal()        {}

// MarshalCommand serializes a Command with a "type" discriminator field.
func MarshalCommand(c Command) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("cannot marshal nil command")
	}
	if _, ok := c.(AddServiceCommand); ok {
		return json.Marshal(map[string]string{"type": "AddService"})
	}
	return marshalTagged(c.CommandType(), c)
}

// UnmarshalCommand deserializes a Command from JSON with a "type" discriminator.
func UnmarshalCommand(data []byte) (Command, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal command type: %w", err)
	}

	switch envelope.Type {
	case "UpdateTheme":
		var c UpdateThemeCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateHomePage":
		var c UpdateHomePageCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateAboutPage":
		var c UpdateAboutPageCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateServicesPage":
		var c UpdateServicesPageCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateBlogPage":
		var c UpdateBlogPageCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateContactPage":
		var c UpdateContactPageCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateNavbar":
		var c UpdateNavbarCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateFooter":
		var c UpdateFooterCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateSEO":
		var c UpdateSEOCommand
		return c, json.Unmarshal(data, &c)
	case "AddService":
		return AddServiceCommand{}, nil
	case "RemoveService":
		var c RemoveServiceCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateService":
		var c UpdateServiceCommand
		return c, json.Unmarshal(data, &c)
	case "CreateBlogPost":
		var c CreateBlogPostCommand
		return c, json.Unmarshal(data, &c)
	case "UpdateBlogPost":
		var c UpdateBlogPostCommand
		return c, json.Unmarshal(data, &c)
	case "DeleteBlogPost":
		var c DeleteBlogPostCommand
		return c, json.Unmarshal(data, &c)
	default:
		return nil, fmt.Errorf("unknown command type: %q", envelope.Type)
	}
}

// marshalTagged marshals a struct with an injected "type" field.
func marshalTagged(typeName string, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	typeJSON, _ := json.Marshal(typeName)
	m["type"] = typeJSON
	return json.Marshal(m)
}
