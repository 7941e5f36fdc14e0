package pkg

import (
	"math"
	"regexp"
	"strings"
)

var slugRe = regexp.MustCompile("[^a-z0-9]+")

// Slugify lowercases a skill or company name into a url-safe slug.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = slugRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "unknown"
	}
	return slug
}

// Round2 rounds to two decimal places, the precision every user-facing score
// is reported at.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// TitleCase uppercases the first letter of every space-separated word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
