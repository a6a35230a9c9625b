package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatString changes the case of input.
// Only an explicit false lowercases, a nil flag behaves like true.
func FormatString(input string, toUpper *bool) string {
	// A Caser keeps state, build one per call
	if toUpper != nil && !*toUpper {
		return cases.Lower(language.Und).String(input)
	}
	return cases.Upper(language.Und).String(input)
}
