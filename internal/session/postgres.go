package session

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// queryTimeout bounds the store operations - the Store interface is called
// from the transport hot path and must not hang on a slow database.
const queryTimeout = 5 * time.Second

// PostgresStore persists the session token in the console_sessions table so
// that any console instance can serve an authenticated deployment.
// Rows are keyed by store name (one row per console deployment).
type PostgresStore struct {
	pool *pgxpool.Pool
	name string

	now func() time.Time
}

func NewPostgresStore(pool *pgxpool.Pool, name string) *PostgresStore {
	return &PostgresStore{
		pool: pool,
		name: name,
		now:  time.Now,
	}
}

func (s *PostgresStore) Get() (Token, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var token Token
	err := s.pool.QueryRow(ctx,
		`SELECT access_token, expires_at FROM console_sessions WHERE name = $1`,
		s.name,
	).Scan(&token.AccessToken, &token.ExpiresAt)
	if err != nil {
		// no row, or the lookup failed: either way the console is not
		// logged in and the next protected call forces re-authentication
		return Token{}, false
	}

	return token, true
}

func (s *PostgresStore) Set(token Token) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO console_sessions (name, access_token, expires_at, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (name) DO UPDATE
		 SET access_token = EXCLUDED.access_token,
		     expires_at = EXCLUDED.expires_at,
		     updated_at = now()`,
		s.name, token.AccessToken, token.ExpiresAt,
	)
	return err
}

func (s *PostgresStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`DELETE FROM console_sessions WHERE name = $1`, s.name)
	return err
}

func (s *PostgresStore) IsValid() bool {
	token, ok := s.Get()
	if !ok || token.AccessToken == "" {
		return false
	}

	return s.now().Before(token.ExpiresAt)
}
