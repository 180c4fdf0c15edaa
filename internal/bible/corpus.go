package bible

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrCorpusUnavailable wraps any failure to fetch or decode the corpus.
var ErrCorpusUnavailable = errors.New("bible corpus unavailable")

// Corpus is the complete book/chapter/verse text, immutable after load.
// Books iterate in the document order of the source JSON; chapters and
// verses iterate in ascending numeric order.
type Corpus struct {
	books    []string
	chapters map[string][]int
	verses   map[string]map[int][]int
	data     map[string]map[int]map[int]string
	total    int
}

func (c *Corpus) Books() []string { return c.books }

func (c *Corpus) HasBook(book string) bool {
	_, ok := c.data[book]
	return ok
}

func (c *Corpus) Chapters(book string) []int { return c.chapters[book] }

func (c *Corpus) HasChapter(book string, chapter int) bool {
	_, ok := c.data[book][chapter]
	return ok
}

// VerseNumbers returns the verse numbers of a chapter in ascending order.
func (c *Corpus) VerseNumbers(book string, chapter int) []int {
	return c.verses[book][chapter]
}

func (c *Corpus) VerseCount(book string, chapter int) int {
	return len(c.data[book][chapter])
}

func (c *Corpus) Verse(book string, chapter, verse int) (string, bool) {
	text, ok := c.data[book][chapter][verse]
	return text, ok
}

// TotalVerses is the number of verses across the whole corpus.
func (c *Corpus) TotalVerses() int { return c.total }

// Loader fetches the corpus once per process and caches it. Concurrent
// first callers share a single fetch; a failed load is retried on the
// next call.
type Loader struct {
	source string
	client *http.Client

	group singleflight.Group
	mu    sync.RWMutex
	cache *Corpus
}

// NewLoader accepts a local file path or an http(s) URL as source.
func NewLoader(source string) *Loader {
	return &Loader{
		source: source,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (l *Loader) Load(ctx context.Context) (*Corpus, error) {
	l.mu.RLock()
	cached := l.cache
	l.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := l.group.Do("corpus", func() (interface{}, error) {
		l.mu.RLock()
		cached := l.cache
		l.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		corpus, err := l.fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
		}

		l.mu.Lock()
		l.cache = corpus
		l.mu.Unlock()
		return corpus, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Corpus), nil
}

func (l *Loader) fetch(ctx context.Context) (*Corpus, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", l.source, resp.StatusCode)
		}
		return decodeCorpus(resp.Body)
	}

	f, err := os.Open(l.source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeCorpus(f)
}

// decodeCorpus streams the top-level object token by token so book order
// is preserved exactly as published.
func decodeCorpus(r io.Reader) (*Corpus, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("corpus: expected top-level object, got %v", tok)
	}

	c := &Corpus{
		chapters: make(map[string][]int),
		verses:   make(map[string]map[int][]int),
		data:     make(map[string]map[int]map[int]string),
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		book, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("corpus: expected book name, got %v", tok)
		}

		var raw map[string]map[string]string
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("corpus: decode book %q: %w", book, err)
		}

		chapterData := make(map[int]map[int]string, len(raw))
		verseNums := make(map[int][]int, len(raw))
		chapterNums := make([]int, 0, len(raw))

		for chapterKey, rawVerses := range raw {
			chapter, err := strconv.Atoi(chapterKey)
			if err != nil {
				return nil, fmt.Errorf("corpus: book %q: bad chapter key %q", book, chapterKey)
			}

			versesByNum := make(map[int]string, len(rawVerses))
			nums := make([]int, 0, len(rawVerses))
			for verseKey, text := range rawVerses {
				verse, err := strconv.Atoi(verseKey)
				if err != nil {
					return nil, fmt.Errorf("corpus: %s %d: bad verse key %q", book, chapter, verseKey)
				}
				versesByNum[verse] = text
				nums = append(nums, verse)
				c.total++
			}
			sort.Ints(nums)

			chapterData[chapter] = versesByNum
			verseNums[chapter] = nums
			chapterNums = append(chapterNums, chapter)
		}
		sort.Ints(chapterNums)

		c.books = append(c.books, book)
		c.chapters[book] = chapterNums
		c.verses[book] = verseNums
		c.data[book] = chapterData
	}

	if len(c.books) == 0 {
		return nil, errors.New("corpus: no books in source")
	}
	return c, nil
}
