package services

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// TokenSet is a set of stemmed, lowercased tokens with O(1) membership tests.
type TokenSet map[string]struct{}

func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

func (s TokenSet) Len() int {
	return len(s)
}

// NormalizeText tokenizes raw text on word boundaries (alphabetic runs of
// length >= 2), lowercases, stems, and returns the tokens as a set. Stemming
// collapses morphological variants, so "manage", "managed" and "management"
// compare equal. Pure function, no side effects.
func NormalizeText(text string) TokenSet {
	set := make(TokenSet)
	for _, word := range splitWords(text) {
		set[stemToken(word)] = struct{}{}
	}
	return set
}

// NormalizePhrases normalizes a list of free-text phrases into one token set.
func NormalizePhrases(phrases []string) TokenSet {
	set := make(TokenSet)
	for _, phrase := range phrases {
		for _, word := range splitWords(phrase) {
			set[stemToken(word)] = struct{}{}
		}
	}
	return set
}

// PhraseTokens returns the stemmed tokens of a single phrase in order.
// A multi-word keyword matches a resume only if every token is present.
func PhraseTokens(phrase string) []string {
	words := splitWords(phrase)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		tokens = append(tokens, stemToken(word))
	}
	return tokens
}

func stemToken(word string) string {
	return english.Stem(strings.ToLower(word), false)
}

func splitWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if len([]rune(field)) >= 2 {
			words = append(words, field)
		}
	}
	return words
}
