package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User is a registered account. Passwords are stored hashed only.
type User struct {
	ID             int64
	Email          string
	Username       string
	HashedPassword string
	CreatedAt      time.Time
}

// UserRepository manages user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and returns it with the generated ID.
func (r *UserRepository) Create(ctx context.Context, email, username, hashedPassword string) (*User, error) {
	query := `
		INSERT INTO users (email, username, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	u := User{Email: email, Username: username, HashedPassword: hashedPassword}
	err := r.db.QueryRow(ctx, query, email, username, hashedPassword).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &u, nil
}

// GetByEmail retrieves a user by email. Returns ErrNotFound when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, username, hashed_password, created_at
		FROM users
		WHERE email = $1
	`

	var u User
	err := r.db.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Username, &u.HashedPassword, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &u, nil
}

// GetByUsername retrieves a user by username. Returns ErrNotFound when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, email, username, hashed_password, created_at
		FROM users
		WHERE username = $1
	`

	var u User
	err := r.db.QueryRow(ctx, query, username).Scan(&u.ID, &u.Email, &u.Username, &u.HashedPassword, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &u, nil
}
