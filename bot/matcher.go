package bot

import (
	"strings"
	"unicode"
)

type matcher interface {
	// contains reports whether word occurs in the normalized input
	contains(input, word string) bool
	// words splits the normalized input for coin scanning
	words(input string) []string
}

// substringMatcher takes any occurrence as a match, so "history" says "hi".
type substringMatcher struct{}

func (substringMatcher) contains(input, word string) bool {
	return strings.Contains(input, word)
}

func (substringMatcher) words(input string) []string {
	return strings.Fields(input)
}

// wholeWordMatcher only matches words delimited by anything that is not a
// letter or digit, "btc?" and "(eth)" are words, "history" is not "hi".
type wholeWordMatcher struct{}

func (m wholeWordMatcher) contains(input, word string) bool {
	for _, w := range m.words(input) {
		if w == word {
			return true
		}
	}
	return false
}

func (wholeWordMatcher) words(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
