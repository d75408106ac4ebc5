package newsletter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeEmail trims whitespace and lower-cases an email address.
// Normalization must happen before any lookup or write; the unique index on
// subscribers.email assumes it. Case folding via x/text matches Postgres
// lower() on the handful of non-ASCII code points where strings.ToLower
// does not.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}
