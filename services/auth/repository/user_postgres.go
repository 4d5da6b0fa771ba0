package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

// PostgresUserRepo stores user accounts in PostgreSQL
type PostgresUserRepo struct {
	db *sqlx.DB
}

// NewPostgresUserRepo creates a new Postgres user repository instance
func NewPostgresUserRepo(db *sqlx.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// GetByPhone retrieves a user by normalized phone number, or (nil, nil)
func (r *PostgresUserRepo) GetByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	query := `
		SELECT id, name, phone_number, created_at
		FROM users
		WHERE phone_number = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Create inserts a new user account
func (r *PostgresUserRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, phone_number, created_at)
		VALUES (:id, :name, :phone_number, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
