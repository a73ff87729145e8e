// ABOUTME: Pure read of navbar/footer sections into rendered link/label view models.
// ABOUTME: Owns the route table; blog post paths come from each post's slug.
package projection

import "github.com/brightpath-web/sitewright/content"

// NavLink pairs a rendered label with its route path.
type NavLink struct {
	Label string
	Path  string
}

// NavView is the rendered navigation bar.
type NavView struct {
	BrandName string
	Links     []NavLink
	AdminLink NavLink
}

// FooterView is the rendered footer.
type FooterView struct {
	CompanyName   string
	Phone         string
	PhoneLink     string
	LegalLinks    []NavLink
	CopyrightText string
}

// ProjectNav derives the navigation view from the navbar section.
func ProjectNav(n content.NavbarContent) NavView {
	return NavView{
		BrandName: n.BrandName,
		Links: []NavLink{
			{Label: n.HomeLinkText, Path: "/"},
			{Label: n.AboutLinkText, Path: "/about-us"},
			{Label: n.ServicesLinkText, Path: "/services"},
			{Label: n.BlogLinkText, Path: "/blog"},
			{Label: n.ContactLinkText, Path: "/contact-us"},
		},
		AdminLink: NavLink{Label: n.AdminLinkText, Path: "/admin"},
	}
}

// ProjectFooter derives the footer view from the footer section.
func ProjectFooter(f content.FooterContent) FooterView {
	return FooterView{
		CompanyName: f.CompanyName,
		Phone:       f.Phone,
		PhoneLink:   content.SupportPhoneLink,
		LegalLinks: []NavLink{
			{Label: f.PrivacyPolicyLinkText, Path: "/privacy-policy"},
			{Label: f.TermsOfServiceLinkText, Path: "/terms-of-service"},
		},
		CopyrightText: f.CopyrightText,
	}
}
