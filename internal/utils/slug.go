// Package utils carries small helpers with no dependencies on the rest of
// the app.
package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
var multiDash = regexp.MustCompile(`-+`)

// Czech content shows up in titles and filenames, so fold diacritics before
// stripping instead of throwing the letters away.
var diacritics = strings.NewReplacer(
	"á", "a", "č", "c", "ď", "d", "é", "e", "ě", "e", "í", "i", "ň", "n",
	"ó", "o", "ř", "r", "š", "s", "ť", "t", "ú", "u", "ů", "u", "ý", "y", "ž", "z",
	"Á", "a", "Č", "c", "Ď", "d", "É", "e", "Ě", "e", "Í", "i", "Ň", "n",
	"Ó", "o", "Ř", "r", "Š", "s", "Ť", "t", "Ú", "u", "Ů", "u", "Ý", "y", "Ž", "z",
)

// Slugify lowercases the input and reduces it to ascii letters, digits and
// single dashes. Used for export filenames.
func Slugify(input string) string {
	s := diacritics.Replace(strings.TrimSpace(input))
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
