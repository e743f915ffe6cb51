package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresStore keeps each snapshot as one row in a snapshots table,
// upserted whole on every write.
type PostgresStore struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresStore(db *pgxpool.Pool, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

// EnsureSchema creates the snapshots table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS snapshots (
            name       TEXT PRIMARY KEY,
            doc        JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure snapshots table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, name string) ([]byte, error) {
	var doc []byte
	err := s.db.QueryRow(ctx,
		`SELECT doc FROM snapshots WHERE name = $1`, name,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read snapshot", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return doc, nil
}

func (s *PostgresStore) Set(ctx context.Context, name string, doc []byte) error {
	query := `
        INSERT INTO snapshots (name, doc, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
    `
	if _, err := s.db.Exec(ctx, query, name, doc); err != nil {
		s.logger.Error("Failed to write snapshot", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM snapshots WHERE name = $1`, name); err != nil {
		s.logger.Error("Failed to delete snapshot", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}
