package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
)

var errUserExists = apperrors.Conflict("User with this username or email already exists.")

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, email, password_hash, role) VALUES (?, ?, ?, ?)`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", duplicateOr(err, errUserExists))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByEmail returns a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, `SELECT id, username, email, password_hash, role FROM users WHERE email = ?`, email)
}

// GetByID returns a user by id
func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	return r.get(ctx, `SELECT id, username, email, password_hash, role FROM users WHERE id = ?`, userID)
}

func (r *userRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
