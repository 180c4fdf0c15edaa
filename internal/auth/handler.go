package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/biblethink/biblethink-api/pkg/response"
)

type Handler struct {
	service AuthService
}

func NewHandler(service AuthService) Handler {
	return Handler{service: service}
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, "Missing required fields", map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(w, http.StatusConflict, "User already exists", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to register", err.Error())
		return
	}

	response.Created(w, user, "successfully")
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", err.Error())
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "Invalid credentials", err.Error())
		return
	}

	response.Success(w, user, "successfully")
}

func (h *Handler) GetUserDetailsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	user, err := h.service.GetUserDetails(r.Context(), userID)
	if err != nil {
		response.NotFound(w, "User not found")
		return
	}

	response.Success(w, user, "successfully")
}
