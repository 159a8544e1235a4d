package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL flavour and the database/sql driver
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ErrUnknownDialect is returned by Open for anything but postgres or sqlite
var ErrUnknownDialect = errors.New("unknown sql dialect")

// Store implements every repository on a relational database. Multi-row
// writes go through Transactor and commit or roll back together.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects with the driver matching the dialect and checks the connection
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	var driver string
	switch dialect {
	case Postgres:
		driver = "postgres"
	case SQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect == SQLite {
		// a single connection serialises writers and keeps transactions on one handle
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return New(db, dialect), nil
}

// New wraps an already opened database
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateSchema creates all tables. Safe to call multiple times.
func (s *Store) CreateSchema(ctx context.Context) error {
	seqColumn := "seq INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.dialect == Postgres {
		seqColumn = "seq BIGSERIAL PRIMARY KEY"
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, strings.ReplaceAll(stmt, "{{seq}}", seqColumn)); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS entrants (
		{{seq}},
		id TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		national_id TEXT NOT NULL UNIQUE,
		casino_account_id TEXT NOT NULL,
		payout_key_type TEXT NOT NULL DEFAULT '',
		payout_key_value TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL,
		schema_version INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_entrants_created_at ON entrants(created_at DESC, seq DESC)`,
	`CREATE TABLE IF NOT EXISTS winners (
		{{seq}},
		id TEXT NOT NULL UNIQUE,
		entrant_id TEXT NOT NULL,
		draw_id TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		national_id TEXT NOT NULL,
		casino_account_id TEXT NOT NULL,
		payout_key_type TEXT NOT NULL DEFAULT '',
		payout_key_value TEXT NOT NULL DEFAULT '',
		registered_at BIGINT NOT NULL,
		won_at BIGINT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('PENDING', 'PAID')),
		updated_at BIGINT NOT NULL,
		schema_version INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_winners_won_at ON winners(won_at DESC, seq DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_winners_entrant_id ON winners(entrant_id)`,
	`CREATE TABLE IF NOT EXISTS raffle_stats (
		id TEXT PRIMARY KEY,
		total_raffles BIGINT NOT NULL DEFAULT 0 CHECK (total_raffles >= 0),
		updated_at BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// conn returns the transaction carried by ctx, or the pool
func (s *Store) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

// rebind rewrites ? placeholders to $n for postgres
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toUnix(t time.Time) int64 {
	return t.UnixNano()
}

func fromUnix(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// Transactor returns a transactor that runs fn inside BEGIN/COMMIT
func (s *Store) Transactor() repositories.Transactor {
	return &transactor{s: s}
}

type transactor struct {
	s *Store
}

func (t *transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, nested := ctx.Value(txKey{}).(*sql.Tx); nested {
		return fn(ctx)
	}

	tx, err := t.s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}
	return tx.Commit()
}

func (t *transactor) Atomic() bool {
	return true
}
