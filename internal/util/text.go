package util

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var (
	reOutOfStock   = regexp.MustCompile(`(?i)\s*[-(]\s*out\s+of\s+(?:stock|print|order).*$`)
	reSpecialOrder = regexp.MustCompile(`(?i)\s*[-(]\s*special\s+orders?\s+only.*$`)
)

// NormalizeTitle trims a raw title and strips the stock-status
// annotations the bookstore appends to titles ("- out of stock",
// "(special orders only)" and variants). Idempotent.
func NormalizeTitle(raw string) string {
	s := strings.TrimSpace(raw)
	s = reOutOfStock.ReplaceAllString(s, "")
	s = reSpecialOrder.ReplaceAllString(s, "")
	return s
}

// URLKey builds the importer's url_key: a slug of the title with the
// book code appended, so two books with identical titles still get
// distinct keys.
func URLKey(title, code string) string {
	return slug.Make(title) + "-" + code
}
