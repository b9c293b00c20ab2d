package radisense

import (
	"context"
	"log/slog"
)

const (
	defaultScoreThreshold = 2.1
	defaultMaxResults     = 34
)

// QueryRewriterFunc rewrites a raw query string before it is tokenized for
// the general search path. It is never consulted for the literal "*"
// wildcard query.
type QueryRewriterFunc func(ctx context.Context, query string) (string, error)

// Config is the immutable configuration for an Engine. It can be built
// directly or through the With* functional options below, mirroring the
// Option/CorpusOption pattern the bm25s/bm25md family of repos uses for
// their own constructors.
type Config struct {
	// Fields are the configured, ordered searchable field names.
	Fields []string
	// IDField names the field whose value is the document's unique id.
	IDField string
	// CustomBoostFactorField, if set, names a numeric field whose value
	// adds to the final score instead of being indexed.
	CustomBoostFactorField string
	// Boost maps field name to a multiplicative score factor.
	Boost map[string]float64
	// SpecificDocumentBoosts maps document id to a multiplicative score
	// factor.
	SpecificDocumentBoosts map[string]float64
	// InitialResults is the ordered list of document ids returned for the
	// "*" wildcard query.
	InitialResults []string
	// ScoreThreshold is the exclusive lower bound a result's score must
	// clear to be returned. Zero (the unset value) defaults to 2.1; to
	// accept every positive score, pass a small negative value instead.
	ScoreThreshold float64
	// MaxResults caps the number of results returned. Zero (the unset
	// value) defaults to 34.
	MaxResults int
	// QueryRewriter, if set, is called to rewrite/expand the query string
	// before the general search path tokenizes it.
	QueryRewriter QueryRewriterFunc
	// Logger receives optional Debug-level diagnostic lines. A nil Logger
	// disables logging entirely.
	Logger *slog.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithFields sets the ordered list of searchable field names.
func WithFields(fields ...string) Option {
	return func(c *Config) { c.Fields = fields }
}

// WithIDField sets the id field name.
func WithIDField(field string) Option {
	return func(c *Config) { c.IDField = field }
}

// WithBoost sets per-field multiplicative boosts.
func WithBoost(boost map[string]float64) Option {
	return func(c *Config) { c.Boost = boost }
}

// WithSpecificDocumentBoosts sets per-document multiplicative boosts.
func WithSpecificDocumentBoosts(boosts map[string]float64) Option {
	return func(c *Config) { c.SpecificDocumentBoosts = boosts }
}

// WithCustomBoostFactorField names a numeric field that additively boosts
// scores instead of being indexed.
func WithCustomBoostFactorField(field string) Option {
	return func(c *Config) { c.CustomBoostFactorField = field }
}

// WithInitialResults sets the ordered wildcard-query result ids.
func WithInitialResults(ids ...string) Option {
	return func(c *Config) { c.InitialResults = ids }
}

// WithScoreThreshold overrides the default 2.1 result score threshold.
func WithScoreThreshold(threshold float64) Option {
	return func(c *Config) { c.ScoreThreshold = threshold }
}

// WithMaxResults overrides the default 34 result cap.
func WithMaxResults(max int) Option {
	return func(c *Config) { c.MaxResults = max }
}

// WithQueryRewriter attaches a query rewriter, the seam the augment
// package's LLM-backed rewriter plugs into.
func WithQueryRewriter(f QueryRewriterFunc) Option {
	return func(c *Config) { c.QueryRewriter = f }
}

// WithLogger attaches a logger for optional Debug-level tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// NewConfig builds a Config from options.
func NewConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
