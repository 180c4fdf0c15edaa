package bible

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/biblethink/biblethink-api/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) Handler {
	return Handler{service: service}
}

// GetPassageHandler resolves ?reference= into a passage.
func (h *Handler) GetPassageHandler(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		response.BadRequest(w, "Missing required query param", map[string]string{
			"reference": "reference is required",
		})
		return
	}

	passage, err := h.service.Resolve(r.Context(), reference)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	response.Success(w, passage, "successfully")
}

// GetRandomPassageHandler returns a random passage, ?count= verses long.
func (h *Handler) GetRandomPassageHandler(w http.ResponseWriter, r *http.Request) {
	count := 5
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Invalid count", map[string]string{
				"count": "count must be a positive integer",
			})
			return
		}
		count = parsed
	}

	passage, err := h.service.ResolveRandom(r.Context(), count)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	response.Success(w, passage, "successfully")
}

// SearchHandler answers reference-shaped queries by direct resolution and
// everything else by substring search.
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.BadRequest(w, "Missing search query", map[string]string{
			"q": "q is required",
		})
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid limit", map[string]string{
				"limit": "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	if LooksLikeReference(query) {
		passage, err := h.service.Resolve(r.Context(), query)
		if err == nil {
			response.Success(w, map[string]interface{}{
				"passage": passage,
				"results": []SearchResult{},
			}, "successfully")
			return
		}
		if errors.Is(err, ErrCorpusUnavailable) {
			writeResolveError(w, err)
			return
		}
		// A reference-shaped query that does not resolve falls through to
		// the text search.
	}

	results, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"results": results,
	}, "successfully")
}

// GetBooksHandler lists the book names in corpus order.
func (h *Handler) GetBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.BookNames(r.Context())
	if err != nil {
		writeResolveError(w, err)
		return
	}
	response.Success(w, books, "successfully")
}

func writeResolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		response.BadRequest(w, "Invalid reference format", err.Error())
	case errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrChapterNotFound),
		errors.Is(err, ErrNoVersesFound):
		response.NotFound(w, "Passage not found")
	case errors.Is(err, ErrSamplingExhausted):
		response.Error(w, http.StatusServiceUnavailable, "Could not sample a passage, try again", err.Error())
	case errors.Is(err, ErrCorpusUnavailable):
		response.Error(w, http.StatusServiceUnavailable, "Bible data unavailable", err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
