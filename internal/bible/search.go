package bible

import (
	"context"
	"strings"
)

// Search performs a case-insensitive substring match of query against
// every verse, scanning in corpus iteration order and stopping as soon as
// limit matches are collected. Result order is corpus order, not
// relevance order. An empty query matches every verse up to limit, so
// callers must guard against it.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		return []SearchResult{}, nil
	}

	corpus, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	lowerQuery := strings.ToLower(query)
	results := make([]SearchResult, 0, limit)

	for _, book := range corpus.Books() {
		if len(results) >= limit {
			break
		}
		for _, chapter := range corpus.Chapters(book) {
			if len(results) >= limit {
				break
			}
			for _, verse := range corpus.VerseNumbers(book, chapter) {
				if len(results) >= limit {
					break
				}
				text, _ := corpus.Verse(book, chapter, verse)
				if strings.Contains(strings.ToLower(text), lowerQuery) {
					results = append(results, SearchResult{
						Book:      book,
						Chapter:   chapter,
						Verse:     verse,
						Text:      text,
						Reference: Reference{Book: book, Chapter: chapter, StartVerse: verse, EndVerse: verse}.String(),
					})
				}
			}
		}
	}

	return results, nil
}
