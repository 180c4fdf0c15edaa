package auth

import (
	"context"
	"errors"
	"log"

	"github.com/biblethink/biblethink-api/pkg/util"
)

type AuthService struct {
	repo Repository
}

func NewAuthService(repo Repository) AuthService {
	return AuthService{repo: repo}
}

func (h *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("invalid email and password")
	}

	hashed, err := util.HashPasswordBcrypt(req.Password)
	if err != nil {
		return nil, err
	}

	user := User{Email: req.Email, Password: hashed, UserName: req.UserName}

	_, err = h.repo.CreateUser(ctx, user)
	if err != nil {
		log.Printf("Service err: %v", err.Error())
		return nil, err
	}

	return h.Login(ctx, req.Email, req.Password)
}

func (h *AuthService) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := h.repo.GetUserByEmail(ctx, email)
	if err != nil {
		log.Printf("Service err: %v", err.Error())
		return nil, ErrInvalidCredentials
	}

	err = util.ComparePasswordBcrypt(user.Password, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	user.Token = token
	return user, nil
}

func (h *AuthService) GetUserDetails(ctx context.Context, userID int) (*User, error) {
	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("error fetching user: %v", err)
		return nil, ErrUserNotFound
	}
	return user, nil
}
