package solvium

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	sitekeyAttribute   = "data-sitekey"
	recaptchaSelector  = ".g-recaptcha"
	turnstileSelector  = ".cf-turnstile"
	anySitekeySelector = "[" + sitekeyAttribute + "]"
)

// SitekeyFromHTML digs a captcha sitekey out of a fetched page. It checks the
// standard recaptcha and turnstile widget markup first, then any element
// carrying a data-sitekey attribute. Returns "" when the page has none.
func SitekeyFromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, selector := range []string{recaptchaSelector, turnstileSelector, anySitekeySelector} {
		if key, ok := doc.Find(selector).First().Attr(sitekeyAttribute); ok && key != "" {
			return key
		}
	}
	return ""
}
