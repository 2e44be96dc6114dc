// Package tokenizer turns raw lines of text into normalized word tokens.
package tokenizer

import (
	"strings"
	"unicode"
)

// isWordRune reports whether r may appear inside a token: letters
// (accented included), digits, and underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Tokenize lowercases a line, replaces every rune that is neither a word
// rune nor whitespace with a space, and splits on runs of whitespace.
// Empty results are dropped. Pure and stateless; token order follows the
// order of appearance in the line.
func Tokenize(line string) []string {
	lowered := strings.ToLower(line)

	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)

	return strings.Fields(cleaned)
}
