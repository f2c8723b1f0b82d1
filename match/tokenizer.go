package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokens of this rune length or shorter carry no lexical signal.
const minTokenRunes = 2

// normalizeText lowercases the text, strips combining diacritic marks
// after canonical decomposition, and replaces every character that is
// not a letter, digit or whitespace with a space. Accented and
// unaccented spellings of a word become identical.
func normalizeText(text string) string {
	lowered := strings.ToLower(text)

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// Tokenization is total: fall back to the lowered input.
		stripped = lowered
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, stripped)
}

// Tokenize normalizes free text into an ordered set of lowercase,
// accent-stripped tokens. Duplicates are collapsed keeping the order of
// first appearance, tokens of length <= 2 and stopwords are discarded.
// Empty input yields an empty set.
func (m *Matcher) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.Fields(normalizeText(text))
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, token := range fields {
		if utf8.RuneCountInString(token) <= minTokenRunes {
			continue
		}
		if _, ok := m.stopwords[token]; ok {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// compileStopwords normalizes the configured stopword list through the
// same pipeline as regular text, so the set matches tokens exactly.
func compileStopwords(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		for _, token := range strings.Fields(normalizeText(word)) {
			set[token] = struct{}{}
		}
	}
	return set
}
