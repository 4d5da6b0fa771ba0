package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

const pgUndefinedTable = "42P01"

// PostgresStateStore is the shared StateStore backend. Writers to one scope
// are serialized with a transaction-scoped advisory lock so concurrent
// mutations never interleave, even across processes.
type PostgresStateStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPostgresStateStore creates a new Postgres state store
func NewPostgresStateStore(db *sqlx.DB) *PostgresStateStore {
	return &PostgresStateStore{
		db:  db,
		now: time.Now,
	}
}

// Mutate runs fn inside a transaction holding the scope's advisory lock.
// The lock is released on commit or rollback.
func (s *PostgresStateStore) Mutate(ctx context.Context, scope string, fn func(*models.AppState) (interface{}, error)) (interface{}, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", scope); err != nil {
		return nil, fmt.Errorf("failed to acquire scope lock: %w", err)
	}

	state, err := s.loadState(ctx, tx, scope)
	if err != nil {
		return nil, err
	}

	result, err := fn(state)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO app_state (scope, state, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (scope) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`,
		scope, raw, s.now()); err != nil {
		return nil, fmt.Errorf("failed to persist state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit state: %w", err)
	}

	return result, nil
}

// Read returns the scope state from a plain snapshot read. A scope that has
// never been written is seeded through Mutate so subsequent reads are stable.
func (s *PostgresStateStore) Read(ctx context.Context, scope string) (*models.AppState, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, "SELECT state FROM app_state WHERE scope = $1", scope)
	if errors.Is(err, sql.ErrNoRows) {
		result, mErr := s.Mutate(ctx, scope, func(state *models.AppState) (interface{}, error) {
			return state, nil
		})
		if mErr != nil {
			return nil, mErr
		}
		return result.(*models.AppState), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	state := &models.AppState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return state, nil
}

// loadState reads the scope row inside the locked transaction, seeding new
// scopes from the legacy snapshot when one exists.
func (s *PostgresStateStore) loadState(ctx context.Context, tx *sqlx.Tx, scope string) (*models.AppState, error) {
	var raw []byte
	err := tx.GetContext(ctx, &raw, "SELECT state FROM app_state WHERE scope = $1", scope)
	if errors.Is(err, sql.ErrNoRows) {
		return s.initialState(ctx, scope), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	state := &models.AppState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return state, nil
}

// initialState migrates the legacy single-blob snapshot when present,
// otherwise falls back to the synthetic seed. The legacy table may not exist
// on fresh installations.
func (s *PostgresStateStore) initialState(ctx context.Context, scope string) *models.AppState {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, "SELECT payload FROM legacy_state WHERE scope = $1", scope)
	if err == nil {
		state := &models.AppState{}
		if jsonErr := json.Unmarshal(raw, state); jsonErr == nil {
			logger.Info("Migrated scope from legacy snapshot",
				logger.String("scope", scope))
			return state
		}
		logger.Warn("Legacy snapshot is unreadable, seeding fresh state",
			logger.String("scope", scope))
	} else if !errors.Is(err, sql.ErrNoRows) && !isUndefinedTable(err) {
		logger.Warn("Legacy snapshot lookup failed, seeding fresh state",
			logger.String("scope", scope),
			logger.Err(err))
	}

	return seedAppState(s.now())
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}
