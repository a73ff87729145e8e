// ABOUTME: Tests for nav and footer projection: label-to-route pairing and the
// ABOUTME: support-contact link in the footer.
package projection

import (
	"testing"

	"github.com/brightpath-web/sitewright/content"
)

func TestProjectNav(t *testing.T) {
	nav := ProjectNav(content.NavbarContent{
		BrandName:        "Brand",
		HomeLinkText:     "Home",
		AboutLinkText:    "About",
		ServicesLinkText: "Services",
		BlogLinkText:     "Blog",
		ContactLinkText:  "Contact",
		AdminLinkText:    "Admin",
	})

	if nav.BrandName != "Brand" {
		t.Errorf("BrandName = %q, want Brand", nav.BrandName)
	}
	wantPaths := []string{"/", "/about-us", "/services", "/blog", "/contact-us"}
	if len(nav.Links) != len(wantPaths) {
		t.Fatalf("link count = %d, want %d", len(nav.Links), len(wantPaths))
	}
	for i, want := range wantPaths {
		if nav.Links[i].Path != want {
			t.Errorf("link %d path = %q, want %q", i, nav.Links[i].Path, want)
		}
		if nav.Links[i].Label == "" {
			t.Errorf("link %d has empty label", i)
		}
	}
	if nav.AdminLink.Path != "/admin" || nav.AdminLink.Label != "Admin" {
		t.Errorf("admin link = %+v, want /admin with Admin label", nav.AdminLink)
	}
}

func TestProjectFooter(t *testing.T) {
	footer := ProjectFooter(content.FooterContent{
		CompanyName:            "Co",
		Phone:                  content.SupportPhoneNumber,
		PrivacyPolicyLinkText:  "Privacy",
		TermsOfServiceLinkText: "Terms",
		CopyrightText:          "© 2026 Co",
	})

	if footer.PhoneLink != content.SupportPhoneLink {
		t.Errorf("PhoneLink = %q, want %q", footer.PhoneLink, content.SupportPhoneLink)
	}
	if len(footer.LegalLinks) != 2 {
		t.Fatalf("legal link count = %d, want 2", len(footer.LegalLinks))
	}
	if footer.LegalLinks[0].Path != "/privacy-policy" || footer.LegalLinks[1].Path != "/terms-of-service" {
		t.Errorf("legal link paths = %+v", footer.LegalLinks)
	}
	if footer.CopyrightText != "© 2026 Co" {
		t.Errorf("CopyrightText = %q", footer.CopyrightText)
	}
}
