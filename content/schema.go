// ABOUTME: WebsiteDocument is the single aggregate holding every editable section of the site.
// ABOUTME: Defines the JSON wire shape for persistence; Clone produces a fully independent copy.
package content

// SEO is the per-page search/social metadata record. URL is the canonical route
// path for the page that owns it; for blog posts it is always "/blog/" + slug.
type SEO struct {
	URL             string `json:"url"`
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords,omitempty"`
	OGTitle         string `json:"ogTitle,omitempty"`
	OGDescription   string `json:"ogDescription,omitempty"`
	OGImage         string `json:"ogImage,omitempty"`
}

// ThemeSettings holds the color, font, and image tokens the theme projection
// maps to presentation variables.
type ThemeSettings struct {
	PrimaryColor       string `json:"primaryColor"`
	SecondaryColor     string `json:"secondaryColor"`
	AccentColor        string `json:"accentColor"`
	TextPrimaryColor   string `json:"textPrimaryColor"`
	TextSecondaryColor string `json:"textSecondaryColor"`
	FontSans           string `json:"fontSans"`
	FontSerif          string `json:"fontSerif"`
	FontMono           string `json:"fontMono"`
	HeroImage          string `json:"heroImage"`
	AboutImage1        string `json:"aboutImage1"`
	AboutImage2        string `json:"aboutImage2"`
	ContactImage       string `json:"contactImage"`
}

// Service is one entry of the services page list. IDs are unique within the
// list and never reused.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// BlogPost is one entry of the blogPosts list. ID is immutable once created;
// Slug is unique within the list and URL-safe.
type BlogPost struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Date     string `json:"date"` // ISO calendar date, YYYY-MM-DD
	Summary  string `json:"summary"`
	Content  string `json:"content"` // HTML or markdown body
	ImageURL string `json:"imageUrl"`
	SEO      SEO    `json:"seo"`
}

// HomePageContent is the home page section.
type HomePageContent struct {
	Headline        string   `json:"headline"`
	Tagline         string   `json:"tagline"`
	ServicesSummary []string `json:"servicesSummary"`
	HeroImageURL    string   `json:"heroImageUrl"`
	SEO             SEO      `json:"seo"`
}

// AboutSection is one heading/content block of the about page.
type AboutSection struct {
	Heading  string `json:"heading"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	ImageAlt string `json:"imageAlt,omitempty"`
}

// AboutPageContent is the about page section.
type AboutPageContent struct {
	Title    string         `json:"title"`
	Sections []AboutSection `json:"sections"`
	SEO      SEO            `json:"seo"`
}

// ServicesPageContent is the services page section, owning the service list.
type ServicesPageContent struct {
	Title        string    `json:"title"`
	Introduction string    `json:"introduction"`
	ServiceList  []Service `json:"serviceList"`
	SEO          SEO       `json:"seo"`
}

// BlogPageContent is the blog listing page section (the posts themselves live
// in WebsiteDocument.BlogPosts).
type BlogPageContent struct {
	Title        string `json:"title"`
	Introduction string `json:"introduction"`
	SEO          SEO    `json:"seo"`
}

// ContactPageContent is the contact page section. Phone is sourced from the
// support-contact constant and is read-only to the editor.
type ContactPageContent struct {
	Title     string `json:"title"`
	FormIntro string `json:"formIntro"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone"`
	SEO       SEO    `json:"seo"`
}

// NavbarContent holds the navigation labels. No SEO record.
type NavbarContent struct {
	BrandName        string `json:"brandName"`
	HomeLinkText     string `json:"homeLinkText"`
	AboutLinkText    string `json:"aboutLinkText"`
	ServicesLinkText string `json:"servicesLinkText"`
	BlogLinkText     string `json:"blogLinkText"`
	ContactLinkText  string `json:"contactLinkText"`
	AdminLinkText    string `json:"adminLinkText"`
}

// FooterContent holds the footer labels. Phone mirrors the support-contact
// constant and is read-only to the editor. No SEO record.
type FooterContent struct {
	CompanyName            string `json:"companyName"`
	Phone                  string `json:"phone"`
	PrivacyPolicyLinkText  string `json:"privacyPolicyLinkText"`
	TermsOfServiceLinkText string `json:"termsOfServiceLinkText"`
	CopyrightText          string `json:"copyrightText"`
}

// WebsiteDocument is the aggregate root. It is owned exclusively by the Store
// and mutated only through Content Editor commands; every field is always
// fully populated.
type WebsiteDocument struct {
	Theme        ThemeSettings       `json:"theme"`
	HomePage     HomePageContent     `json:"homePage"`
	AboutPage    AboutPageContent    `json:"aboutPage"`
	ServicesPage ServicesPageContent `json:"servicesPage"`
	BlogPage     BlogPageContent     `json:"blogPage"`
	BlogPosts    []BlogPost          `json:"blogPosts"`
	ContactPage  ContactPageContent  `json:"contactPage"`
	Footer       FooterContent       `json:"footer"`
	Navbar       NavbarContent       `json:"navbar"`
}

// Clone returns a deep copy of the document. Mutations work on clones so the
// previous document and its slices are never shared with the new one;
// deep-equality-sensitive consumers (the theme projection) rely on this.
func (d *WebsiteDocument) Clone() *WebsiteDocument {
	out := *d

	out.HomePage.ServicesSummary = append([]string(nil), d.HomePage.ServicesSummary...)
	out.AboutPage.Sections = append([]AboutSection(nil), d.AboutPage.Sections...)
	out.ServicesPage.ServiceList = append([]Service(nil), d.ServicesPage.ServiceList...)
	out.BlogPosts = append([]BlogPost(nil), d.BlogPosts...)

	return &out
}

// PostBySlug resolves a blog post by exact slug match.
func (d *WebsiteDocument) PostBySlug(slug string) (BlogPost, bool) {
	for _, p := range d.BlogPosts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// PostByID resolves a blog post by id.
func (d *WebsiteDocument) PostByID(id string) (BlogPost, bool) {
	for _, p := range d.BlogPosts {
		if p.ID == id {
			return p, true
		}
	}
	return BlogPost{}, false
}

// ServiceByID resolves a service list entry by id.
func (d *WebsiteDocument) ServiceByID(id string) (Service, bool) {
	for _, s := range d.ServicesPage.ServiceList {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
