package radisense

import "unicode/utf8"

// invertedIndex maps lowercase term to the set of document ids that
// produced it, plus the per-document length table and running corpus
// totals the scorer needs (total document count and average length,
// maintained incrementally on every add — see SPEC_FULL §4.4).
type invertedIndex struct {
	postings     map[string]map[string]struct{}
	docLengths   map[string]int
	totalDocs    int
	totalLength  int
	avgDocLength float64
}

func newInvertedIndex() *invertedIndex {
	return &invertedIndex{
		postings:   make(map[string]map[string]struct{}),
		docLengths: make(map[string]int),
	}
}

// add tokenizes every configured string field present on doc, records each
// emitted term against id, and updates the length table and corpus totals.
func (idx *invertedIndex) add(id string, fields []string, doc Document) {
	length := 0
	for _, f := range fields {
		v, ok := doc[f]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		length += utf8.RuneCountInString(s)

		for _, term := range tokenize(s) {
			set, ok := idx.postings[term]
			if !ok {
				set = make(map[string]struct{})
				idx.postings[term] = set
			}
			set[id] = struct{}{}
		}
	}

	idx.docLengths[id] = length
	idx.totalLength += length
	idx.totalDocs++
	idx.avgDocLength = float64(idx.totalLength) / float64(idx.totalDocs)
}

func (idx *invertedIndex) documentFrequency(term string) int {
	return len(idx.postings[term])
}
