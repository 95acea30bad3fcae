package service

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSlugBaseLen  = 60
	fallbackSlugTag = "cobro"
)

// Slugify turns a free-text concept into a URL-safe lowercase slug:
// accents are stripped ("Inscripción" -> "inscripcion") and every run of
// other characters becomes a single hyphen.
func Slugify(concept string) string {
	// transform.Chain keeps state, so build one per call.
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripper, concept)
	if err != nil {
		plain = concept
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(plain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	slug := b.String()
	if len(slug) > maxSlugBaseLen {
		slug = strings.TrimRight(slug[:maxSlugBaseLen], "-")
	}
	if slug == "" {
		return fallbackSlugTag
	}
	return slug
}

// BaseSlug is the preferred slug for a cobro: "<concept>-<cobroID>".
func BaseSlug(concept string, cobroID int64) string {
	return Slugify(concept) + "-" + strconv.FormatInt(cobroID, 10)
}

// disambiguate appends a base36 millisecond timestamp to a taken slug.
func disambiguate(base string, at time.Time) string {
	return base + "-" + strconv.FormatInt(at.UnixMilli(), 36)
}
