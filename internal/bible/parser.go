package bible

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat means the reference string does not match the grammar.
var ErrInvalidFormat = errors.New("invalid reference format")

// Accepts "Genesis 1:1", "Genesis 1:1-5", "Song of Solomon 2:4". The book
// name may contain spaces and digits ("1 John").
var referencePattern = regexp.MustCompile(`^(.+?)\s+(\d+):(\d+)(?:-(\d+))?$`)

// ParseReference parses a reference string into its parts. It is purely
// syntactic: book and chapter existence is the resolver's concern.
func ParseReference(input string) (Reference, error) {
	m := referencePattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return Reference{}, ErrInvalidFormat
	}

	chapter, err := strconv.Atoi(m[2])
	if err != nil {
		return Reference{}, ErrInvalidFormat
	}
	start, err := strconv.Atoi(m[3])
	if err != nil {
		return Reference{}, ErrInvalidFormat
	}
	end := start
	if m[4] != "" {
		end, err = strconv.Atoi(m[4])
		if err != nil {
			return Reference{}, ErrInvalidFormat
		}
	}

	if chapter < 1 || start < 1 || end < start {
		return Reference{}, ErrInvalidFormat
	}

	return Reference{
		Book:       m[1],
		Chapter:    chapter,
		StartVerse: start,
		EndVerse:   end,
	}, nil
}

// LooksLikeReference reports whether a query is reference-shaped. Callers
// use it to answer such queries by direct resolution instead of a text
// search.
func LooksLikeReference(query string) bool {
	return referencePattern.MatchString(strings.TrimSpace(query))
}
