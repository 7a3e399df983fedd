package valueobjects

import (
	"sort"
	"strings"
)

// ExtractTokens turns a value of unknown shape into a deduplicated list of
// normalized lowercase tokens. Profile and group metadata arrive from JSON
// columns and seed data in whatever shape the client stored, so every shape
// degrades gracefully: strings are split on common separators, arrays accept
// bare strings or objects carrying a name/title field, objects are walked by
// value, and anything else yields nothing. Never returns an error.
func ExtractTokens(v any) []string {
	seen := make(map[string]bool)
	out := []string{}
	collectTokens(v, &out, seen)
	return out
}

func collectTokens(v any, out *[]string, seen map[string]bool) {
	switch value := v.(type) {
	case string:
		appendTokens(value, out, seen)
	case []string:
		for _, s := range value {
			appendTokens(s, out, seen)
		}
	case []any:
		for _, element := range value {
			collectElement(element, out, seen)
		}
	case map[string]any:
		// Objects are treated as an array of their values. Keys are sorted so
		// extraction stays deterministic across calls.
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			collectElement(value[k], out, seen)
		}
	}
}

// collectElement applies the array-element rule: bare strings are tokenized,
// objects contribute their name or title field, everything else is dropped.
func collectElement(element any, out *[]string, seen map[string]bool) {
	switch value := element.(type) {
	case string:
		appendTokens(value, out, seen)
	case map[string]any:
		if name, ok := value["name"].(string); ok {
			appendTokens(name, out, seen)
		} else if title, ok := value["title"].(string); ok {
			appendTokens(title, out, seen)
		}
	}
}

func appendTokens(raw string, out *[]string, seen map[string]bool) {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '/' || r == '|' || r == '\n' || r == '\r'
	})
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		*out = append(*out, token)
	}
}

// TokenSet is an ordered, deduplicated set of lowercase interest tokens.
// It is immutable after construction; every operation returns a new set.
type TokenSet struct {
	tokens []string
	index  map[string]bool
}

// NewTokenSet builds a token set from already-extracted tokens, normalizing
// and deduplicating while preserving first-seen order.
func NewTokenSet(tokens ...string) TokenSet {
	set := TokenSet{index: make(map[string]bool)}
	for _, raw := range tokens {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" || set.index[token] {
			continue
		}
		set.index[token] = true
		set.tokens = append(set.tokens, token)
	}
	return set
}

// ExtractTokenSet extracts tokens from a value of unknown shape into a set.
func ExtractTokenSet(v any) TokenSet {
	return NewTokenSet(ExtractTokens(v)...)
}

// Union returns a new set containing the tokens of both sets, this set's
// tokens first.
func (s TokenSet) Union(other TokenSet) TokenSet {
	return s.UnionTokens(other.tokens)
}

// UnionTokens returns a new set with the given tokens appended after this
// set's tokens, skipping duplicates.
func (s TokenSet) UnionTokens(tokens []string) TokenSet {
	merged := make([]string, 0, len(s.tokens)+len(tokens))
	merged = append(merged, s.tokens...)
	merged = append(merged, tokens...)
	return NewTokenSet(merged...)
}

// Contains reports whether the set holds the token, case-insensitively.
func (s TokenSet) Contains(token string) bool {
	return s.index[strings.ToLower(strings.TrimSpace(token))]
}

// Overlap returns the given tokens that are present in the set, lowercased,
// preserving the order of the input.
func (s TokenSet) Overlap(tokens []string) []string {
	matched := []string{}
	matchedSeen := make(map[string]bool)
	for _, raw := range tokens {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" || matchedSeen[token] || !s.index[token] {
			continue
		}
		matchedSeen[token] = true
		matched = append(matched, token)
	}
	return matched
}

// Capped returns up to n tokens in set order.
func (s TokenSet) Capped(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(s.tokens) {
		n = len(s.tokens)
	}
	out := make([]string, n)
	copy(out, s.tokens[:n])
	return out
}

// List returns a copy of all tokens in set order.
func (s TokenSet) List() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Len returns the number of tokens in the set.
func (s TokenSet) Len() int {
	return len(s.tokens)
}
