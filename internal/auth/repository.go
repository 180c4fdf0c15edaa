package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/biblethink/biblethink-api/internal/database"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInternalServer     = errors.New("internal server error")
)

// Repository defines the methods the Auth module provides for DB operations.
type Repository interface {
	CreateUser(ctx context.Context, user User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID int) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) CreateUser(ctx context.Context, user User) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	err := r.db.QueryRowContext(ctx, checkQuery, user.Email).Scan(&exists)
	if err != nil {
		return nil, ErrInternalServer
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	query := `
		INSERT INTO users (email, password, user_name)
		VALUES ($1, $2, $3)
		RETURNING id, email, user_name, created_at, updated_at
	`
	var created User
	err = r.db.QueryRowContext(ctx, query, user.Email, user.Password, user.UserName).Scan(
		&created.ID,
		&created.Email,
		&created.UserName,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, ErrInternalServer
	}
	return &created, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password, user_name, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var u User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.UserName,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternalServer
	}
	return &u, nil
}

func (r *repository) GetUserByID(ctx context.Context, userID int) (*User, error) {
	query := `
		SELECT id, email, user_name, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var u User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&u.ID,
		&u.Email,
		&u.UserName,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternalServer
	}
	return &u, nil
}
