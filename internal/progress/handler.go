package progress

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/biblethink/biblethink-api/internal/auth"
	"github.com/biblethink/biblethink-api/internal/bible"
	"github.com/biblethink/biblethink-api/pkg/response"
)

type Handler struct {
	service ProgressService
}

func NewHandler(service ProgressService) Handler {
	return Handler{service: service}
}

func (h *Handler) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", err.Error())
		return
	}
	if req.Reference == "" {
		response.BadRequest(w, "Missing required fields", map[string]string{
			"reference": "reference is required",
		})
		return
	}

	recorded, err := h.service.MarkRead(r.Context(), userID, req.Reference)
	if err != nil {
		writeProgressError(w, "Failed to mark passage as read", err)
		return
	}

	response.Success(w, map[string]bool{
		"recorded": recorded,
	}, "successfully")
}

func (h *Handler) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	summary, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		writeProgressError(w, "Failed to get progress", err)
		return
	}

	response.Success(w, summary, "successfully")
}

func (h *Handler) ListReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	passages, err := h.service.ListRead(r.Context(), userID)
	if err != nil {
		writeProgressError(w, "Failed to get read passages", err)
		return
	}

	if passages == nil {
		passages = []ReadPassage{}
	}
	response.Success(w, passages, "successfully")
}

func (h *Handler) IsReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	reference := r.URL.Query().Get("reference")
	if reference == "" {
		response.BadRequest(w, "Missing required query param", map[string]string{
			"reference": "reference is required",
		})
		return
	}

	isRead, err := h.service.IsRead(r.Context(), userID, reference)
	if err != nil {
		writeProgressError(w, "Failed to check passage", err)
		return
	}

	response.Success(w, map[string]bool{
		"is_read": isRead,
	}, "successfully")
}

func (h *Handler) GetNotesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	reference := r.URL.Query().Get("reference")
	if reference == "" {
		response.BadRequest(w, "Missing required query param", map[string]string{
			"reference": "reference is required",
		})
		return
	}

	notes, err := h.service.Notes(r.Context(), userID, reference)
	if err != nil {
		writeProgressError(w, "Failed to get notes", err)
		return
	}

	response.Success(w, map[string]string{
		"notes": notes,
	}, "successfully")
}

func (h *Handler) UpdateNotesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", err.Error())
		return
	}
	if req.Reference == "" {
		response.BadRequest(w, "Missing required fields", map[string]string{
			"reference": "reference is required",
		})
		return
	}

	if err := h.service.UpdateNotes(r.Context(), userID, req.Reference, req.Notes); err != nil {
		writeProgressError(w, "Failed to update notes", err)
		return
	}

	response.Success(w, "Ok", "successfully")
}

func (h *Handler) UnreadPassageHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	reference, err := h.service.SampleUnread(r.Context(), userID)
	if err != nil {
		writeProgressError(w, "Failed to sample a passage", err)
		return
	}

	response.Success(w, map[string]string{
		"reference": reference,
	}, "successfully")
}

func (h *Handler) UnreadCountHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		writeProgressError(w, "Failed to count unread passages", err)
		return
	}

	response.Success(w, map[string]int{
		"unread_count": count,
	}, "successfully")
}

func writeProgressError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, bible.ErrInvalidFormat):
		response.BadRequest(w, "Invalid reference format", err.Error())
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Passage has not been read yet")
	case errors.Is(err, bible.ErrCorpusUnavailable),
		errors.Is(err, bible.ErrSamplingExhausted):
		response.Error(w, http.StatusServiceUnavailable, message, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, message, err.Error())
	}
}
