// Package fetch - platform.go provides job-board detection and
// platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Platform represents a known job board.
type Platform string

const (
	// PlatformHH is hh.ru (HeadHunter)
	PlatformHH Platform = "hh"
	// PlatformHabr is career.habr.com
	PlatformHabr Platform = "habr"
	// PlatformGreenhouse is the Greenhouse ATS
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS
	PlatformLever Platform = "lever"
	// PlatformUnknown is an unrecognized board
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "hh.ru"), strings.Contains(host, "headhunter"):
		return PlatformHH
	case strings.Contains(host, "career.habr.com"):
		return PlatformHabr
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	default:
		return PlatformUnknown
	}
}

// PlatformContentSelectors returns content selectors for a platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformHH:
		return []string{
			"[data-qa='vacancy-description']",
			".vacancy-description",
			".g-user-content",
		}
	case PlatformHabr:
		return []string{
			".vacancy-description__text",
			".job_show_description",
		}
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			"#content",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".posting-description",
			".content",
		}
	default:
		return []string{
			".job-description",
			".job-details",
			"main",
			"article",
			".content",
			"#content",
		}
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		".apply-button-container",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}
	switch platform {
	case PlatformHH:
		return append(common,
			"[data-qa='vacancy-response-link']",
			".vacancy-actions",
			".vacancy-sidebar",
		)
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".post-apply")
	case PlatformLever:
		return append(common, ".apply-section", ".posting-apply")
	default:
		return common
	}
}

// JobFields are the pre-split fields a known board's markup provides.
// Empty fields mean the board's markup did not expose them; the job parser
// then recovers them from the text itself.
type JobFields struct {
	Title   string
	Company string
}

// platformFieldSelectors maps a platform to its title/company selectors.
var platformFieldSelectors = map[Platform]JobFields{
	PlatformHH: {
		Title:   "[data-qa='vacancy-title']",
		Company: "[data-qa='vacancy-company-name']",
	},
	PlatformHabr: {
		Title:   ".page-title__title",
		Company: ".company_name",
	},
	PlatformGreenhouse: {
		Title:   ".app-title",
		Company: ".company-name",
	},
	PlatformLever: {
		Title:   ".posting-headline h2",
		Company: ".main-header-logo img",
	},
}

// ExtractJobFields pulls the title and company out of a known board's
// markup. Unknown platforms and missing elements yield empty fields.
func ExtractJobFields(html string, platform Platform) JobFields {
	selectors, ok := platformFieldSelectors[platform]
	if !ok {
		return JobFields{}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return JobFields{}
	}

	fields := JobFields{
		Title:   strings.TrimSpace(doc.Find(selectors.Title).First().Text()),
		Company: strings.TrimSpace(doc.Find(selectors.Company).First().Text()),
	}
	if platform == PlatformLever && fields.Company == "" {
		fields.Company, _ = doc.Find(selectors.Company).First().Attr("alt")
	}
	return fields
}
