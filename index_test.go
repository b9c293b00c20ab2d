package radisense

import "testing"

func TestInvertedIndexAdd(t *testing.T) {
	idx := newInvertedIndex()
	idx.add("/a", []string{"title", "body"}, Document{"title": "Hello", "body": "world"})
	idx.add("/b", []string{"title", "body"}, Document{"title": "Hello", "body": "there"})

	if idx.totalDocs != 2 {
		t.Fatalf("totalDocs = %d, want 2", idx.totalDocs)
	}
	if df := idx.documentFrequency("hello"); df != 2 {
		t.Errorf("documentFrequency(hello) = %d, want 2", df)
	}
	if df := idx.documentFrequency("world"); df != 1 {
		t.Errorf("documentFrequency(world) = %d, want 1", df)
	}
	if idx.docLengths["/a"] != 10 {
		t.Errorf("docLengths[/a] = %d, want 10", idx.docLengths["/a"])
	}
	wantAvg := (10.0 + 10.0) / 2.0
	if idx.avgDocLength != wantAvg {
		t.Errorf("avgDocLength = %f, want %f", idx.avgDocLength, wantAvg)
	}
}

func TestInvertedIndexIgnoresNonStringFields(t *testing.T) {
	idx := newInvertedIndex()
	idx.add("/a", []string{"title", "rank"}, Document{"title": "Hello", "rank": 5})
	if idx.docLengths["/a"] != 5 {
		t.Errorf("docLengths[/a] = %d, want 5 (numeric field must not contribute)", idx.docLengths["/a"])
	}
	if idx.documentFrequency("5") != 0 {
		t.Errorf("numeric field must not be tokenized")
	}
}

func TestInvertedIndexNoDuplicatePostings(t *testing.T) {
	idx := newInvertedIndex()
	idx.add("/a", []string{"title"}, Document{"title": "hello hello hello"})
	set := idx.postings["hello"]
	if len(set) != 1 {
		t.Errorf("expected a single posting for repeated term in one doc, got %d", len(set))
	}
}
