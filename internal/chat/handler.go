package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/biblethink/biblethink-api/pkg/response"
)

type Handler struct {
	service ChatService
}

func NewHandler(service ChatService) Handler {
	return Handler{service: service}
}

func (h *Handler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", err.Error())
		return
	}
	if req.Message == "" {
		response.BadRequest(w, "Missing required fields", map[string]string{
			"message": "message is required",
		})
		return
	}

	reply, err := h.service.SendMessage(r.Context(), req.Message, req.History, req.Passage)
	if err != nil {
		writeChatError(w, err)
		return
	}

	response.Success(w, map[string]string{
		"message": reply,
	}, "successfully")
}

func (h *Handler) ReflectionQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	var req ReflectionQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", err.Error())
		return
	}
	if req.Reference == "" || req.Text == "" {
		response.BadRequest(w, "Missing required fields", map[string]string{
			"reference": "reference is required",
			"text":      "text is required",
		})
		return
	}

	questions := h.service.ReflectionQuestions(r.Context(), req.Reference, req.Text)
	response.Success(w, map[string][]string{
		"questions": questions,
	}, "successfully")
}

func writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		response.Error(w, http.StatusBadGateway, "AI service rejected our credentials", err.Error())
	case errors.Is(err, ErrRateLimited):
		response.Error(w, http.StatusTooManyRequests, "AI service rate limit reached, try again in a moment", err.Error())
	default:
		response.Error(w, http.StatusBadGateway, "Failed to reach the AI service", err.Error())
	}
}
