package bible

import (
	"context"
	"testing"
)

func TestSearchShortCircuitsAtLimit(t *testing.T) {
	service := newTestService(t)

	// "love" appears in all four 1 John verses of the fixture.
	results, err := service.Search(context.Background(), "love", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected exactly 3 results, got %d", len(results))
	}

	// Corpus iteration order, not relevance: 1 John 4:7 comes first.
	if results[0].Reference != "1 John 4:7" {
		t.Errorf("expected first hit at 1 John 4:7, got %s", results[0].Reference)
	}
	if results[1].Verse != 8 || results[2].Verse != 9 {
		t.Errorf("expected verses 8 and 9 next, got %d and %d", results[1].Verse, results[2].Verse)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	service := newTestService(t)

	results, err := service.Search(context.Background(), "BELOVED", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Book != "1 John" || results[0].Chapter != 4 || results[0].Verse != 7 {
		t.Errorf("unexpected hit: %+v", results[0])
	}
}

func TestSearchScansInCorpusOrder(t *testing.T) {
	service := newTestService(t)

	// "God" appears in Genesis, Exodus is skipped, then 1 John.
	results, err := service.Search(context.Background(), "god", 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) < 2 {
		t.Fatalf("expected several results, got %d", len(results))
	}
	if results[0].Book != "Genesis" {
		t.Errorf("expected Genesis first, got %s", results[0].Book)
	}

	lastGenesis := -1
	firstJohn := len(results)
	for i, r := range results {
		switch r.Book {
		case "Genesis":
			lastGenesis = i
		case "1 John":
			if i < firstJohn {
				firstJohn = i
			}
		}
	}
	if lastGenesis > firstJohn {
		t.Error("expected all Genesis hits before 1 John hits")
	}
}

func TestSearchZeroLimit(t *testing.T) {
	service := newTestService(t)

	results, err := service.Search(context.Background(), "love", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results at limit 0, got %d", len(results))
	}
}

func TestSearchNoMatches(t *testing.T) {
	service := newTestService(t)

	results, err := service.Search(context.Background(), "quux", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
