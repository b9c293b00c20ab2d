// Package radisense is an in-memory full-text search engine for small and
// medium document corpora. It ranks documents with a BM25+ presence score
// modulated by prefix and bounded-Levenshtein fuzzy matching, and by
// per-field, per-document and custom-boost-field factors.
package radisense

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by AddDocument.
var (
	ErrMissingIDField = errors.New("radisense: document missing id field")
	ErrInvalidIDField = errors.New("radisense: id field value is not string or number")
	ErrDuplicateID    = errors.New("radisense: document id already indexed")
)

// Engine holds a Config plus the mutable index and document store built up
// by AddDocument calls. It is not safe for concurrent use: a host driving
// it from multiple goroutines must serialize access itself, the same
// single-threaded-cooperative model the teacher's BM25S instance assumes.
type Engine struct {
	cfg   Config
	index *invertedIndex
	store *documentStore
}

// New constructs an Engine. Config.ScoreThreshold and Config.MaxResults
// default to 2.1 and 34 when left at their zero value.
func New(cfg Config) *Engine {
	if cfg.ScoreThreshold == 0 {
		cfg.ScoreThreshold = defaultScoreThreshold
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = defaultMaxResults
	}
	return &Engine{
		cfg:   cfg,
		index: newInvertedIndex(),
		store: newDocumentStore(),
	}
}

// AddDocument resolves doc's id, projects it to the configured fields,
// and indexes its string fields. It returns ErrMissingIDField if the id
// field is absent, ErrInvalidIDField if its value cannot be stringified,
// and ErrDuplicateID if the id is already indexed — re-adding an id is
// treated as a caller error rather than silently inflating the corpus
// document count (see SPEC_FULL §9).
func (e *Engine) AddDocument(doc Document) error {
	raw, ok := doc[e.cfg.IDField]
	if !ok {
		return ErrMissingIDField
	}
	id, err := stringifyID(raw)
	if err != nil {
		return err
	}
	if e.store.has(id) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	projected := project(doc, e.cfg.IDField, e.cfg.Fields)
	e.store.put(id, projected)
	e.index.add(id, e.cfg.Fields, projected)

	if e.cfg.Logger != nil {
		e.cfg.Logger.Debug("indexed document", "id", id, "fields", len(e.cfg.Fields))
	}
	return nil
}

// TotalDocuments returns the number of documents currently indexed.
func (e *Engine) TotalDocuments() int {
	return e.store.size()
}
