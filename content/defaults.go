// ABOUTME: Built-in default WebsiteDocument used when no persisted state exists.
// ABOUTME: Ports the seeded theme, pages, services, and blog posts; single source of the support phone.
package content

import (
	"fmt"
	"time"
)

// SupportPhoneNumber is the single support-contact constant. contactPage.phone
// and footer.phone always carry this value and are read-only to the editor.
const SupportPhoneNumber = "+1 (510)-370-1986"

// SupportPhoneLink is the tel: form of SupportPhoneNumber for rendered links.
const SupportPhoneLink = "tel:+15103701986"

const defaultSEOTitle = "System Mechanic USA Support"

const defaultMetaDescription = "Get expert help with System Mechanic issues. Call " +
	SupportPhoneNumber + " for 24/7 live support on installation, login, billing, and more."

// defaultSEO returns the base SEO record for a page; URL is set per page.
func defaultSEO(url, title, description string) SEO {
	return SEO{
		URL:             url,
		Title:           title,
		MetaDescription: description,
	}
}

// DefaultDocument constructs the built-in default document. Every section is
// fully populated; callers receive a fresh copy on each call.
func DefaultDocument() *WebsiteDocument {
	return &WebsiteDocument{
		Theme: ThemeSettings{
			PrimaryColor:       "#dc2626",
			SecondaryColor:     "#f8fafc",
			AccentColor:        "#ef4444",
			TextPrimaryColor:   "#1e293b",
			TextSecondaryColor: "#475569",
			FontSans:           "ui-sans-serif, system-ui, sans-serif",
			FontSerif:          "ui-serif, Georgia, serif",
			FontMono:           "ui-monospace, SFMono-Regular, monospace",
			HeroImage:          "https://picsum.photos/1600/600?random=1",
			AboutImage1:        "https://picsum.photos/800/600?random=2",
			AboutImage2:        "https://picsum.photos/800/600?random=3",
			ContactImage:       "https://picsum.photos/800/600?random=4",
		},
		HomePage: HomePageContent{
			Headline: "Need help with System Mechanic? Call " + SupportPhoneNumber + " for instant support.",
			Tagline:  "24/7 Live Assistance for Installation, Reactivation, Login, Billing, and More.",
			ServicesSummary: []string{
				"Installation, Uninstallation, & Reactivation",
				"Account Recovery, Login Issues, & Error Fixes",
				"Credit Card Expiration & Payment Issues",
				"Renewal, Cancellation, & Subscription Management",
				"General Customer Service & Troubleshooting",
			},
			HeroImageURL: "https://picsum.photos/1920/1080?random=1",
			SEO: defaultSEO("/",
				"System Mechanic USA Support – 24/7 Assistance "+SupportPhoneNumber,
				defaultMetaDescription),
		},
		AboutPage: AboutPageContent{
			Title: "About System Mechanic USA Assistance",
			Sections: []AboutSection{
				{
					Heading: "Our Mission",
					Content: "At System Mechanic USA Assistance, our mission is to provide unparalleled " +
						"24/7 live support to System Mechanic users across the United States. Our dedicated " +
						"team of experts is always on standby, ready to deliver prompt, reliable, and " +
						"customer-centric solutions to get your software running smoothly.",
					ImageURL: "https://picsum.photos/800/600?random=2",
					ImageAlt: "Our Mission - Customer Service",
				},
				{
					Heading: "Why Choose Us?",
					Content: "Our team comprises highly trained professionals with deep expertise in " +
						"System Mechanic software and common PC optimization challenges. With 24/7 " +
						"availability, you'll never be left waiting for support, whether it's an " +
						"installation problem, a login error, a billing inquiry, or advanced troubleshooting.",
					ImageURL: "https://picsum.photos/800/600?random=3",
					ImageAlt: "Why Choose Us - Reliable Team",
				},
			},
			SEO: defaultSEO("/about-us",
				"About System Mechanic USA Assistance – 24/7 Expert Support | "+SupportPhoneNumber,
				"Learn about System Mechanic USA Assistance. We offer 24/7 expert support for all your System Mechanic needs. Call "+SupportPhoneNumber+" today."),
		},
		ServicesPage: ServicesPageContent{
			Title: "Our Comprehensive Support Services",
			Introduction: "We offer a wide range of services to ensure your System Mechanic experience " +
				"is always smooth and problem-free. Our 24/7 live support team is ready to assist you with any issue.",
			ServiceList: defaultServices(),
			SEO: defaultSEO("/services",
				"System Mechanic Support Services – Install, Reactivate, Billing & More | "+SupportPhoneNumber,
				"Comprehensive technical support for System Mechanic users. Call us at "+SupportPhoneNumber+" for help with installation, login issues, billing problems, and more."),
		},
		BlogPage: BlogPageContent{
			Title: "Helpful Articles & Guides",
			Introduction: "Explore our library of articles and step-by-step guides to resolve common " +
				"System Mechanic issues. For personalized assistance, our support team is always available!",
			SEO: defaultSEO("/blog",
				"System Mechanic Blog – Troubleshooting Guides & Tips | "+SupportPhoneNumber,
				"Find solutions to common System Mechanic problems with our detailed blog articles and guides. For live support, call "+SupportPhoneNumber+"."),
		},
		BlogPosts: defaultBlogPosts(),
		ContactPage: ContactPageContent{
			Title:     "Contact Our Support Team",
			FormIntro: "Reach out to us using the form below, or for immediate assistance, please call our 24/7 support line.",
			Address:   "123 Support Lane, Anytown, CA 90210, USA",
			Email:     "support@systemmechanicusaassistance.com",
			Phone:     SupportPhoneNumber,
			SEO: defaultSEO("/contact-us",
				"Contact System Mechanic USA Support – Call "+SupportPhoneNumber,
				"Get in touch with System Mechanic USA Assistance for 24/7 support. Call "+SupportPhoneNumber+" or fill out our contact form for help."),
		},
		Footer: FooterContent{
			CompanyName:            "System Mechanic USA Assistance",
			Phone:                  SupportPhoneNumber,
			PrivacyPolicyLinkText:  "Privacy Policy",
			TermsOfServiceLinkText: "Terms of Service",
			CopyrightText: fmt.Sprintf("© %d System Mechanic USA Assistance. All rights reserved.",
				time.Now().Year()),
		},
		Navbar: NavbarContent{
			BrandName:        "System Mechanic USA Assistance",
			HomeLinkText:     "Home",
			AboutLinkText:    "About Us",
			ServicesLinkText: "Services",
			BlogLinkText:     "Blog",
			ContactLinkText:  "Contact Us",
			AdminLinkText:    "Admin",
		},
	}
}

func defaultServices() []Service {
	return []Service{
		{
			ID:          "install",
			Title:       "Installation, Uninstallation, & Reactivation",
			Description: "Expert guidance for seamless installation, complete uninstallation, and hassle-free reactivation of your System Mechanic software.",
		},
		{
			ID:          "account",
			Title:       "Account Recovery, Login Issues, & Error Fixes",
			Description: "Assistance with recovering your account, resolving login difficulties, and fixing common errors to get you back on track.",
		},
		{
			ID:          "payment",
			Title:       "Credit Card Expiration & Payment Issues",
			Description: "Support for updating credit card information, resolving payment failures, and managing billing for uninterrupted service.",
		},
		{
			ID:          "renewal",
			Title:       "Renewal, Cancellation, & Subscription Management",
			Description: "Help with managing your subscription, renewing your service, or processing cancellations with clear, easy steps.",
		},
		{
			ID:          "troubleshooting",
			Title:       "General Customer Service & Troubleshooting",
			Description: "Comprehensive support for any System Mechanic-related query, from general inquiries to advanced troubleshooting.",
		},
	}
}

func defaultBlogPosts() []BlogPost {
	phoneHTML := `<p class="mt-4">If you need more help, our 24/7 support team is here for you:</p>` +
		`<p class="text-xl font-bold mt-2"><a href="` + SupportPhoneLink + `">` + SupportPhoneNumber + `</a></p>`

	return []BlogPost{
		{
			ID:      "1",
			Slug:    "fix-system-mechanic-login-issues",
			Title:   "How to Fix System Mechanic Login Issues – Call " + SupportPhoneNumber + " for Help",
			Author:  "Support Team",
			Date:    "2023-10-26",
			Summary: "Experiencing trouble logging into your System Mechanic account? This guide provides common solutions. For immediate help, call our experts!",
			Content: `<h2>Steps to Resolve System Mechanic Login Problems</h2>
<p>System Mechanic is designed to keep your PC running smoothly, but sometimes you might encounter issues logging into your account. Common troubleshooting steps:</p>
<ol>
<li><strong>Check your internet connection:</strong> Ensure you have a stable connection.</li>
<li><strong>Verify your credentials:</strong> Double-check your username and password for typos.</li>
<li><strong>Reset your password:</strong> Use the "Forgot Password" link on the login page.</li>
<li><strong>Clear browser cache and cookies:</strong> Old data can interfere with login.</li>
<li><strong>Disable VPN or proxy:</strong> Temporarily disable any VPN or proxy services.</li>
</ol>` + phoneHTML,
			ImageURL: "https://picsum.photos/800/400?random=5",
			SEO: defaultSEO("/blog/fix-system-mechanic-login-issues",
				"How to Fix System Mechanic Login Issues – Call "+SupportPhoneNumber+" for Help",
				"Having trouble logging into System Mechanic? Follow our guide or call "+SupportPhoneNumber+" for instant assistance."),
		},
		{
			ID:      "2",
			Slug:    "reactivate-system-mechanic-account",
			Title:   "How to Reactivate Your System Mechanic Account – Get Support at " + SupportPhoneNumber,
			Author:  "Support Team",
			Date:    "2023-11-15",
			Summary: "Need to reactivate your System Mechanic account or subscription? Learn the simple steps here or call us for help!",
			Content: `<h2>Reactivating Your System Mechanic Account</h2>
<p>If your System Mechanic subscription has expired or become inactive, reactivating it is usually straightforward:</p>
<ol>
<li><strong>Open System Mechanic:</strong> Launch the application on your computer.</li>
<li><strong>Look for activation prompts:</strong> The software will usually prompt you to reactivate or renew your license.</li>
<li><strong>Enter your activation key:</strong> If you have a new key, enter it in the designated field.</li>
<li><strong>Log into your iolo account:</strong> You may need to manage your subscriptions there.</li>
<li><strong>Check subscription status:</strong> Ensure your payment method is current on auto-renewal plans.</li>
</ol>` + phoneHTML,
			ImageURL: "https://picsum.photos/800/400?random=6",
			SEO: defaultSEO("/blog/reactivate-system-mechanic-account",
				"How to Reactivate Your System Mechanic Account – Get Support at "+SupportPhoneNumber,
				"Need to reactivate your System Mechanic account or subscription? Learn the simple steps here or call "+SupportPhoneNumber+" for help!"),
		},
		{
			ID:      "3",
			Slug:    "resolve-system-mechanic-installation-problems",
			Title:   "Steps to Resolve System Mechanic Installation Problems – Call " + SupportPhoneNumber,
			Author:  "Support Team",
			Date:    "2023-12-01",
			Summary: "Having trouble installing System Mechanic? This guide covers common issues and solutions. For direct help, contact us now!",
			Content: `<h2>Troubleshooting System Mechanic Installation Issues</h2>
<p>Installing System Mechanic should be smooth, but occasional issues can arise:</p>
<ol>
<li><strong>Check system requirements:</strong> Ensure your computer meets the minimums.</li>
<li><strong>Download from the official source:</strong> Always use the official iolo Technologies website.</li>
<li><strong>Disable antivirus temporarily:</strong> It may interfere with installation.</li>
<li><strong>Run as administrator:</strong> Right-click the installer and select "Run as administrator."</li>
<li><strong>Check disk space:</strong> Make sure you have enough free space.</li>
</ol>` + phoneHTML,
			ImageURL: "https://picsum.photos/800/400?random=7",
			SEO: defaultSEO("/blog/resolve-system-mechanic-installation-problems",
				"Steps to Resolve System Mechanic Installation Problems – Call "+SupportPhoneNumber,
				"Having trouble installing System Mechanic? Follow our guide or call "+SupportPhoneNumber+" for instant assistance."),
		},
	}
}
