package mood

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biblethink/biblethink-api/pkg/response"
)

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

func (h *Handler) GetMoodsHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, All(), "successfully")
}

func (h *Handler) GetMoodHandler(w http.ResponseWriter, r *http.Request) {
	m, err := ByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrMoodNotFound) {
			response.NotFound(w, "Mood not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get mood", err.Error())
		return
	}
	response.Success(w, m, "successfully")
}

// GetRandomMoodPassageHandler picks one curated reference for the mood.
// The caller resolves it into verses with the passages endpoint.
func (h *Handler) GetRandomMoodPassageHandler(w http.ResponseWriter, r *http.Request) {
	reference, err := RandomReference(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrMoodNotFound) {
			response.NotFound(w, "Mood not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to pick passage", err.Error())
		return
	}
	response.Success(w, map[string]string{"reference": reference}, "successfully")
}
