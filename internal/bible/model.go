package bible

import "fmt"

// Reference identifies a book, chapter and verse range, e.g. "John 3:16"
// or "Genesis 1:1-5". StartVerse <= EndVerse and both are >= 1.
type Reference struct {
	Book       string `json:"book"`
	Chapter    int    `json:"chapter"`
	StartVerse int    `json:"start_verse"`
	EndVerse   int    `json:"end_verse"`
}

// String returns the canonical display form of the reference.
func (r Reference) String() string {
	if r.StartVerse == r.EndVerse {
		return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.StartVerse)
	}
	return fmt.Sprintf("%s %d:%d-%d", r.Book, r.Chapter, r.StartVerse, r.EndVerse)
}

type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Passage is a materialized set of contiguous verses. Verses are ordered
// ascending by number and never empty.
type Passage struct {
	Reference  string  `json:"reference"`
	Book       string  `json:"book"`
	Chapter    int     `json:"chapter"`
	StartVerse int     `json:"start_verse"`
	EndVerse   int     `json:"end_verse"`
	Verses     []Verse `json:"verses"`
}

type SearchResult struct {
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}
