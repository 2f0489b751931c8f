package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer normalizes raw text into a bag of terms: lowercase, strip
// punctuation, drop single-character tokens.
type Tokenizer struct{}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into lowercase terms. Every rune that is not a
// letter, digit, or underscore acts as a separator. Tokens shorter than
// two characters are dropped.
func (t *Tokenizer) Tokenize(text string) []string {
	words := splitWords(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		word = strings.ToLower(word)
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		tokens = append(tokens, word)
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// splitWords splits text into words on non-word rune boundaries.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
