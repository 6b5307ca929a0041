package textrank

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// Fold lower-cases text using full unicode case folding
func Fold(s string) string {
	return foldCaser.String(s)
}

// Tokenize folds case, maps punctuation to spaces, and splits on whitespace
func Tokenize(s string) []string {
	folded := Fold(s)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)
	return strings.Fields(mapped)
}
