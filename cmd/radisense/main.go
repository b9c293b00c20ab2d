// Command radisense loads a JSON document corpus and runs a single query
// against an in-memory radisense.Engine, printing ranked results — a
// thin driver around the library core, the way the pack's own repos ship
// a cmd/ or examples/ entry point around their library packages.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/okasi/radisense"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("radisense", flag.ExitOnError)
	corpusPath := fs.String("corpus", "", "path to a JSON array of documents")
	idField := fs.String("id-field", "id", "name of the document id field")
	fields := fs.String("fields", "title,body", "comma-separated list of searchable fields")
	query := fs.String("query", "*", "query string, or \"*\" for the wildcard path")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *corpusPath == "" {
		return fmt.Errorf("radisense: -corpus is required")
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	docs, err := loadCorpus(*corpusPath)
	if err != nil {
		return fmt.Errorf("radisense: load corpus: %w", err)
	}

	cfg := radisense.NewConfig(
		radisense.WithIDField(*idField),
		radisense.WithFields(splitFields(*fields)...),
		radisense.WithLogger(logger),
	)
	engine := radisense.New(cfg)

	for _, doc := range docs {
		if err := engine.AddDocument(doc); err != nil {
			return fmt.Errorf("radisense: index document: %w", err)
		}
	}

	results, err := engine.Search(context.Background(), *query, nil)
	if err != nil {
		return fmt.Errorf("radisense: search: %w", err)
	}

	for _, r := range results {
		fmt.Printf("%.4f\t%s\n", r.Score, r.ID)
	}
	return nil
}

func loadCorpus(path string) ([]radisense.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []radisense.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func splitFields(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
