package bible

import (
	"context"
	"errors"
	"testing"
)

func TestResolveIsDeterministic(t *testing.T) {
	service := newTestService(t)

	for i := 0; i < 3; i++ {
		passage, err := service.Resolve(context.Background(), "Genesis 1:1-5")
		if err != nil {
			t.Fatal(err)
		}

		if passage.Reference != "Genesis 1:1-5" {
			t.Errorf("unexpected reference: %q", passage.Reference)
		}
		if len(passage.Verses) != 5 {
			t.Fatalf("expected 5 verses, got %d", len(passage.Verses))
		}
		for j, v := range passage.Verses {
			if v.Number != j+1 {
				t.Errorf("verse %d: expected number %d, got %d", j, j+1, v.Number)
			}
		}
		if passage.Verses[0].Text != "In the beginning God created the heavens and the earth." {
			t.Errorf("unexpected first verse: %q", passage.Verses[0].Text)
		}
		if passage.Verses[4].Text != "And there was evening and there was morning, one day." {
			t.Errorf("unexpected last verse: %q", passage.Verses[4].Text)
		}
	}
}

func TestResolveClipsRangeToChapterEnd(t *testing.T) {
	service := newTestService(t)

	passage, err := service.Resolve(context.Background(), "Genesis 1:1-999")
	if err != nil {
		t.Fatal(err)
	}
	if len(passage.Verses) != 5 {
		t.Fatalf("expected the range to clip to 5 verses, got %d", len(passage.Verses))
	}
	if last := passage.Verses[len(passage.Verses)-1]; last.Number != 5 {
		t.Errorf("expected last verse number 5, got %d", last.Number)
	}
}

func TestResolveCanonicalizesReference(t *testing.T) {
	service := newTestService(t)

	passage, err := service.Resolve(context.Background(), "  John 3:16  ")
	if err == nil {
		t.Fatalf("fixture has no John, expected failure, got %+v", passage)
	}

	passage, err = service.Resolve(context.Background(), "Genesis 1:3-3")
	if err != nil {
		t.Fatal(err)
	}
	if passage.Reference != "Genesis 1:3" {
		t.Errorf("expected collapsed display form, got %q", passage.Reference)
	}
}

func TestResolveFailureKinds(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name      string
		reference string
		want      error
	}{
		{"bad grammar", "not a reference", ErrInvalidFormat},
		{"unknown book", "Deuteronomy 1:1", ErrBookNotFound},
		{"unknown chapter", "Genesis 50:1", ErrChapterNotFound},
		{"range past the chapter", "Genesis 1:20-25", ErrNoVersesFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Resolve(context.Background(), tt.reference)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestResolveCorpusUnavailable(t *testing.T) {
	service := NewService(NewLoader("/nonexistent/bible.json"))

	_, err := service.Resolve(context.Background(), "Genesis 1:1")
	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Errorf("expected ErrCorpusUnavailable, got %v", err)
	}
	if _, err := service.Search(context.Background(), "love", 3); !errors.Is(err, ErrCorpusUnavailable) {
		t.Errorf("expected ErrCorpusUnavailable from search, got %v", err)
	}
}

func TestResolveRandomBounds(t *testing.T) {
	service := newTestService(t)

	for _, verseCount := range []int{1, 3, 10} {
		for i := 0; i < 100; i++ {
			passage, err := service.ResolveRandom(context.Background(), verseCount)
			if err != nil {
				t.Fatal(err)
			}

			if len(passage.Verses) < 1 || len(passage.Verses) > verseCount {
				t.Fatalf("verseCount %d: got %d verses", verseCount, len(passage.Verses))
			}
			for j := 1; j < len(passage.Verses); j++ {
				if passage.Verses[j].Number != passage.Verses[j-1].Number+1 {
					t.Fatalf("verses not contiguous: %+v", passage.Verses)
				}
			}
			// Every verse must exist in the drawn chapter.
			corpus, err := service.loader.Load(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			for _, v := range passage.Verses {
				if _, ok := corpus.Verse(passage.Book, passage.Chapter, v.Number); !ok {
					t.Fatalf("verse %s %d:%d not in corpus", passage.Book, passage.Chapter, v.Number)
				}
			}
		}
	}
}

func TestResolveRandomRejectsBadCount(t *testing.T) {
	service := newTestService(t)

	if _, err := service.ResolveRandom(context.Background(), 0); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for count 0, got %v", err)
	}
}

func TestBookNames(t *testing.T) {
	service := newTestService(t)

	books, err := service.BookNames(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(books) != 3 || books[0] != "Genesis" {
		t.Errorf("unexpected books: %v", books)
	}
}
