package services

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase upper-cases the first letter of every word and lower-cases the rest.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
