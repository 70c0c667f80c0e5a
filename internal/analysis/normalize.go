package analysis

import (
	"strings"
	"unicode"
)

// stopwords are dropped from normalized titles before comparison. Headlines
// are short, so function words carry almost no clustering signal and inflate
// Jaccard overlap between unrelated stories.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"by": {}, "with": {}, "from": {}, "as": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "it": {}, "its": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "after": {},
	"over": {}, "amid": {}, "into": {}, "up": {}, "out": {}, "new": {},
	"says": {}, "say": {}, "said": {}, "will": {}, "has": {}, "have": {},
}

// normalizeTitle lowercases a headline, strips punctuation, removes
// stopwords, and collapses whitespace. An empty result means the title
// carried no usable clustering signal.
func normalizeTitle(title string) string {
	return strings.Join(titleTokens(title), " ")
}

// titleTokens returns the normalized token sequence for a headline.
func titleTokens(title string) []string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// tokenSet converts a token sequence to a set for overlap scoring.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// entitySet extracts capitalized tokens from the raw (un-lowercased) title
// as a cheap named-entity proxy. Leading words are included too; headlines
// capitalize inconsistently enough that excluding position 0 loses more
// than it saves.
func entitySet(title string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range strings.Fields(title) {
		trimmed := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if trimmed == "" {
			continue
		}
		runes := []rune(trimmed)
		if unicode.IsUpper(runes[0]) && len(runes) > 1 {
			set[strings.ToLower(trimmed)] = struct{}{}
		}
	}
	return set
}

// jaccard computes token-set overlap: |a ∩ b| / |a ∪ b|.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// sharedEntity reports whether two entity sets have any token in common.
func sharedEntity(a, b map[string]struct{}) bool {
	for t := range a {
		if _, ok := b[t]; ok {
			return true
		}
	}
	return false
}
