package radisense

import "github.com/agnivade/levenshtein"

// editDistance returns the Levenshtein distance between two short strings.
// It wraps agnivade/levenshtein the same way the teacher's rag package
// calls levenshtein.ComputeDistance for its fuzzy match pass, rather than
// hand-rolling another dynamic-programming matrix.
func editDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}
