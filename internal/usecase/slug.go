package usecase

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugify folds accents and keeps [a-z0-9] separated by single dashes.
func slugify(parts ...string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.Join(parts, " ")))
	if err != nil {
		folded = strings.ToLower(strings.Join(parts, " "))
	}

	var b strings.Builder
	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// contractSlug is the human-readable part plus a short random suffix so two
// contracts for the same client never collide.
func contractSlug(clientName, eventType string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	base := slugify(clientName, eventType)
	if base == "" {
		return suffix
	}
	if len(base) > 60 {
		base = strings.TrimRight(base[:60], "-")
	}
	return base + "-" + suffix
}
