// Package postgres implements the entity store on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/pkg/database"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every query
// method works inside and outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is the PostgreSQL-backed root handle. A Store with a nil db is
// a transactional view over an open pgx.Tx.
type Store struct {
	db *database.PostgreSQL
	q  querier
}

// New creates a store over the given database handle.
func New(db *database.PostgreSQL) *Store {
	return &Store{db: db, q: db.Pool()}
}

func (s *Store) Assets() store.AssetStore             { return assets{s.q} }
func (s *Store) Elements() store.ElementStore         { return elements{s.q} }
func (s *Store) Telecells() store.TelecellStore       { return telecells{s.q} }
func (s *Store) Basestations() store.BasestationStore { return basestations{s.q} }
func (s *Store) Users() store.UserStore               { return users{s.q} }

// WithTx runs fn inside a database transaction. The transaction is
// rolled back when fn returns an error and committed otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(store.Store) error) error {
	if s.db == nil {
		// Already inside a transaction; reuse it.
		return fn(s)
	}
	tx, err := s.db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	view := &Store{q: tx}
	if err := fn(view); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// pageClause appends LIMIT/OFFSET bindings to an id-ordered query so
// paging happens in the database rather than over a full result set.
func pageClause(sql string, args []any, page store.Page) (string, []any) {
	if page.Limit > 0 {
		args = append(args, page.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if page.Offset > 0 {
		args = append(args, page.Offset)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return sql, args
}

// translate maps driver errors onto the store sentinels.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, store.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", what, store.ErrDuplicateUUID)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", what, store.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", what, store.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

// locationOf assembles an atomic location from a pair of nullable
// columns.
func locationOf(lat, long *float64) *store.Location {
	if lat == nil || long == nil {
		return nil
	}
	return &store.Location{Latitude: *lat, Longitude: *long}
}

// locationCols splits an optional location back into nullable columns.
func locationCols(loc *store.Location) (lat, long *float64) {
	if loc == nil {
		return nil, nil
	}
	return &loc.Latitude, &loc.Longitude
}
