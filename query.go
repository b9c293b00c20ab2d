package radisense

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Result is one ranked hit returned by Search.
type Result struct {
	ID       string
	Score    float64
	Document Document
}

// Search evaluates query against the index. filter, when non-nil, is
// called at most once per candidate document and may reject it before it
// contributes to any score.
//
// The literal query "*" takes the wildcard path: it returns the
// configured InitialResults, in order, each with score 1, filtered but
// neither sorted nor truncated. Any other query takes the general path
// described in SPEC_FULL §4.6: tokenize, then for every configured field
// and query term, scan every indexed term for a prefix or fuzzy match,
// accumulate per-document scores, sort descending, keep only scores above
// Config.ScoreThreshold, and cap the result at Config.MaxResults entries.
func (e *Engine) Search(ctx context.Context, query string, filter func(Document) bool) ([]Result, error) {
	if query == "*" {
		return e.searchWildcard(filter), nil
	}

	q := query
	if e.cfg.QueryRewriter != nil {
		rewritten, err := e.cfg.QueryRewriter(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("radisense: query rewrite: %w", err)
		}
		q = rewritten
	}

	terms := tokenize(q)
	if len(terms) == 0 {
		return nil, nil
	}

	acc := make(map[string]float64)
	allowed := make(map[string]bool)
	for _, field := range e.cfg.Fields {
		if e.cfg.CustomBoostFactorField != "" && field == e.cfg.CustomBoostFactorField {
			continue
		}
		for _, qTerm := range terms {
			maxDistance := math.Min(6, math.Round(float64(len([]rune(qTerm)))*0.35))
			for indexedTerm, docIDs := range e.index.postings {
				penalty, ok := matchPenalty(qTerm, indexedTerm, maxDistance)
				if !ok {
					continue
				}
				for id := range docIDs {
					doc, ok := e.store.get(id)
					if !ok {
						continue
					}
					if filter != nil {
						keep, seen := allowed[id]
						if !seen {
							keep = filter(doc)
							allowed[id] = keep
						}
						if !keep {
							continue
						}
					}
					acc[id] += e.scoreCandidate(id, indexedTerm, field, penalty, doc)
				}
			}
		}
	}

	results := make([]Result, 0, len(acc))
	for id, score := range acc {
		if score <= e.cfg.ScoreThreshold {
			continue
		}
		doc, _ := e.store.get(id)
		results = append(results, Result{ID: id, Score: score, Document: doc})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > e.cfg.MaxResults {
		results = results[:e.cfg.MaxResults]
	}
	return results, nil
}

func (e *Engine) searchWildcard(filter func(Document) bool) []Result {
	results := make([]Result, 0, len(e.cfg.InitialResults))
	for _, id := range e.cfg.InitialResults {
		doc, ok := e.store.get(id)
		if !ok {
			continue
		}
		if filter != nil && !filter(doc) {
			continue
		}
		results = append(results, Result{ID: id, Score: 1, Document: doc})
	}
	return results
}

// matchPenalty returns the match-type penalty for comparing a query term
// against an indexed term, or ok=false when neither prefix nor fuzzy
// matching applies.
func matchPenalty(qTerm, indexedTerm string, maxDistance float64) (penalty float64, ok bool) {
	isPrefix := strings.HasPrefix(indexedTerm, qTerm)
	dist := editDistance(qTerm, indexedTerm)
	isFuzzy := float64(dist) <= maxDistance && !isPrefix

	n := float64(len([]rune(indexedTerm)))
	switch {
	case isPrefix:
		delta := n - float64(len([]rune(qTerm)))
		return 0.375 * n / (n + 0.3*delta), true
	case isFuzzy:
		return 0.45 * n / (n + float64(dist)), true
	default:
		return 0, false
	}
}
