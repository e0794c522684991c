// Package postgres is the relational store driver, used when the
// service runs against a managed Postgres instance instead of
// Firestore.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type Store struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Open connects a pool and verifies it with a bounded ping.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is not set")
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(cctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, 2*time.Second)
	defer pcancel()

	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return pool, nil
}

func (s *Store) Stores() store.Stores {
	return store.Stores{
		Blog:        &blogRepo{s.db},
		CaseStudies: &caseStudyRepo{s.db},
		Profiles:    &profileRepo{s.db},
		Contacts:    &contactRepo{s.db},
		Accounts:    &accountRepo{s.db},
		Images:      &imageRepo{s.db},
		Health:      s,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.Ping(pctx)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (the slug indexes rely on this).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// validID screens ids before they hit a uuid column. A malformed id
// raises a cast error (22P02) server-side, which would read as an
// internal failure instead of a missing row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
