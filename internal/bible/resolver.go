package bible

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrChapterNotFound   = errors.New("chapter not found")
	ErrNoVersesFound     = errors.New("no verses found")
	ErrSamplingExhausted = errors.New("random sampling exhausted")
)

// maxRandomAttempts bounds how often a random draw is retried before
// giving up with ErrSamplingExhausted.
const maxRandomAttempts = 20

// Service resolves references and searches the corpus.
type Service struct {
	loader *Loader
}

func NewService(loader *Loader) *Service {
	return &Service{loader: loader}
}

// Resolve materializes the passage a reference string points at.
func (s *Service) Resolve(ctx context.Context, reference string) (*Passage, error) {
	ref, err := ParseReference(reference)
	if err != nil {
		return nil, err
	}

	corpus, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return resolve(corpus, ref)
}

func resolve(corpus *Corpus, ref Reference) (*Passage, error) {
	if !corpus.HasBook(ref.Book) {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, ref.Book)
	}
	if !corpus.HasChapter(ref.Book, ref.Chapter) {
		return nil, fmt.Errorf("%w: %s %d", ErrChapterNotFound, ref.Book, ref.Chapter)
	}

	var verses []Verse
	for v := ref.StartVerse; v <= ref.EndVerse; v++ {
		// Verse numbers past the chapter's end are silently skipped, so a
		// range like "Genesis 1:1-999" clips to the chapter.
		if text, ok := corpus.Verse(ref.Book, ref.Chapter, v); ok {
			verses = append(verses, Verse{Number: v, Text: text})
		}
	}

	if len(verses) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoVersesFound, ref.String())
	}

	return &Passage{
		Reference:  ref.String(),
		Book:       ref.Book,
		Chapter:    ref.Chapter,
		StartVerse: ref.StartVerse,
		EndVerse:   ref.EndVerse,
		Verses:     verses,
	}, nil
}

// ResolveRandom picks a uniformly random book, then a uniformly random
// chapter within it, then a start verse such that a verseCount-verse
// window fits the chapter when possible. Selection is uniform over keys,
// not weighted by chapter length.
func (s *Service) ResolveRandom(ctx context.Context, verseCount int) (*Passage, error) {
	if verseCount < 1 {
		return nil, fmt.Errorf("%w: verse count must be >= 1", ErrInvalidFormat)
	}

	corpus, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	books := corpus.Books()
	for attempt := 0; attempt < maxRandomAttempts; attempt++ {
		book := books[rand.IntN(len(books))]
		chapters := corpus.Chapters(book)
		chapter := chapters[rand.IntN(len(chapters))]

		total := corpus.VerseCount(book, chapter)
		if total == 0 {
			continue
		}

		maxStart := total - verseCount + 1
		if maxStart < 1 {
			maxStart = 1
		}
		start := rand.IntN(maxStart) + 1
		end := start + verseCount - 1
		if end > total {
			end = total
		}

		passage, err := resolve(corpus, Reference{
			Book:       book,
			Chapter:    chapter,
			StartVerse: start,
			EndVerse:   end,
		})
		if err != nil {
			continue
		}
		return passage, nil
	}

	return nil, ErrSamplingExhausted
}

// BookNames lists every book in corpus order.
func (s *Service) BookNames(ctx context.Context) ([]string, error) {
	corpus, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return corpus.Books(), nil
}

// TotalVerses is the number of verses across the whole corpus.
func (s *Service) TotalVerses(ctx context.Context) (int, error) {
	corpus, err := s.loader.Load(ctx)
	if err != nil {
		return 0, err
	}
	return corpus.TotalVerses(), nil
}
