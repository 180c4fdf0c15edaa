package bible

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// Fixture corpus. Book order is deliberately non-alphabetical so the
// document-order guarantee is actually exercised.
const testCorpusJSON = `{
	"Genesis": {
		"1": {
			"1": "In the beginning God created the heavens and the earth.",
			"2": "And the earth was waste and void.",
			"3": "And God said, Let there be light: and there was light.",
			"4": "And God saw the light, that it was good.",
			"5": "And there was evening and there was morning, one day."
		},
		"2": {
			"1": "And the heavens and the earth were finished.",
			"2": "And on the seventh day God finished his work."
		}
	},
	"Exodus": {
		"1": {
			"1": "Now these are the names of the sons of Israel.",
			"2": "Reuben, Simeon, Levi, and Judah."
		}
	},
	"1 John": {
		"4": {
			"7": "Beloved, let us love one another: for love is of God.",
			"8": "He that loveth not knoweth not God; for God is love.",
			"9": "Herein was the love of God manifested in us.",
			"10": "Herein is love, not that we loved God."
		}
	}
}`

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bible.json")
	if err := os.WriteFile(path, []byte(testCorpusJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewLoader(path)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(newTestLoader(t))
}

func TestLoaderPreservesBookOrder(t *testing.T) {
	corpus, err := newTestLoader(t).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Genesis", "Exodus", "1 John"}
	got := corpus.Books()
	if len(got) != len(want) {
		t.Fatalf("expected %d books, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("book %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCorpusLookups(t *testing.T) {
	corpus, err := newTestLoader(t).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !corpus.HasBook("Genesis") {
		t.Error("expected Genesis to exist")
	}
	if corpus.HasBook("Deuteronomy") {
		t.Error("did not expect Deuteronomy")
	}
	if !corpus.HasChapter("Genesis", 2) {
		t.Error("expected Genesis 2 to exist")
	}
	if corpus.HasChapter("Genesis", 3) {
		t.Error("did not expect Genesis 3")
	}

	if got := corpus.VerseCount("Genesis", 1); got != 5 {
		t.Errorf("expected 5 verses in Genesis 1, got %d", got)
	}
	if got := corpus.TotalVerses(); got != 13 {
		t.Errorf("expected 13 total verses, got %d", got)
	}

	text, ok := corpus.Verse("1 John", 4, 8)
	if !ok {
		t.Fatal("expected 1 John 4:8 to exist")
	}
	if text != "He that loveth not knoweth not God; for God is love." {
		t.Errorf("unexpected verse text: %q", text)
	}
}

func TestLoaderCachesAcrossCalls(t *testing.T) {
	loader := newTestLoader(t)

	first, err := loader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Remove the source; the cached corpus must still be served.
	if err := os.Remove(loader.source); err != nil {
		t.Fatal(err)
	}

	second, err := loader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the same cached corpus instance")
	}
}

func TestLoaderRetriesAfterFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bible.json")
	loader := NewLoader(path)

	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected load failure for missing source")
	}

	if err := os.WriteFile(path, []byte(testCorpusJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

func TestLoaderRejectsMalformedCorpus(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not an object", `[1, 2, 3]`},
		{"bad chapter key", `{"Genesis": {"one": {"1": "text"}}}`},
		{"bad verse key", `{"Genesis": {"1": {"x": "text"}}}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bible.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewLoader(path).Load(context.Background()); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}
