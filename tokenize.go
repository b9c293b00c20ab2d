package radisense

import (
	"regexp"
	"strings"
)

// urlLikePattern matches a lowercase value that is a single run of
// non-whitespace characters containing a slash and ending in ".html" —
// the tokenizer's bypass rule for URL-ish paths.
var urlLikePattern = regexp.MustCompile(`^\S*/\S*\.html$`)

// splitPattern partitions on any maximal run of Unicode space or
// punctuation, the canonical \p{Z}\p{P} property set.
var splitPattern = regexp.MustCompile(`[\p{Z}\p{P}]+`)

// tokenize lowercases v and splits it into non-empty terms. A value
// matching the URL-path bypass rule is instead emitted whole, as a single
// term, so that paths like "/dir/page.html" stay intact for prefix
// matching instead of fragmenting on their slashes and dots.
func tokenize(v string) []string {
	lower := strings.ToLower(v)
	if urlLikePattern.MatchString(lower) {
		return []string{lower}
	}

	pieces := splitPattern.Split(lower, -1)
	terms := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}
