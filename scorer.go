package radisense

import "math"

// BM25+ constants fixed by the spec: term-frequency saturation k, length
// normalization b, and the lower-bound constant delta.
const (
	bm25K     = 1.2
	bm25B     = 0.7
	bm25Delta = 0.5

	// customBoostFactorWeight scales a custom-boost-field value before it
	// is added to the score.
	customBoostFactorWeight = 0.011
)

// scoreCandidate computes the final score for a (document, indexed term,
// field) match already known to be present (the evaluator only calls this
// for ids drawn from index.postings[term], so term-frequency is always 1
// in this presence-only model), modulated by the match-type penalty and
// then by document, field and custom-boost-field contributions.
func (e *Engine) scoreCandidate(id, term, field string, penalty float64, doc Document) float64 {
	df := float64(e.index.documentFrequency(term))
	n := float64(e.index.totalDocs)
	idf := math.Log((n-df+0.5)/(df+0.5) + 1)

	norm := 1 - bm25B + bm25B*(float64(e.index.docLengths[id])/e.index.avgDocLength)
	const tf = 1.0
	freq := tf*(bm25K+1)/(tf+bm25K*norm) + bm25Delta

	score := idf * freq * penalty

	if sb, ok := e.cfg.SpecificDocumentBoosts[id]; ok {
		score *= sb
	}
	if fb, ok := e.cfg.Boost[field]; ok {
		score *= fb
	}
	if e.cfg.CustomBoostFactorField != "" {
		if v, ok := doc[e.cfg.CustomBoostFactorField]; ok {
			if cb, ok := numericValue(v); ok {
				score += cb * customBoostFactorWeight
			}
		}
	}
	return score
}
