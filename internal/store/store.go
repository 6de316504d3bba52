// Package store is the record store shared by every service: an explicitly
// constructed handle over the database with per-user scoping and a single
// transactional unit of work per API operation.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "ledger/internal/errors"
)

// SQLSTATE codes PostgreSQL returns when a transaction lost a race with a
// concurrent one and may succeed if retried.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// Store wraps the database handle. Construct one per process and pass it to
// the services that need it.
type Store struct {
	db     *gorm.DB
	txOpts *sql.TxOptions
}

// Option configures a Store.
type Option func(*Store)

// WithIsolation runs every Transaction at the given isolation level.
// PostgreSQL deployments use sql.LevelSerializable so that a conflict check
// cannot go stale before the writes that depend on it commit.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(s *Store) {
		s.txOpts = &sql.TxOptions{Isolation: level}
	}
}

// New creates a Store over db.
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DB returns a session bound to ctx for single-statement reads.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Transaction runs fn inside one database transaction. Every write fn makes
// through tx commits together or not at all; returning an error rolls back.
// A serialization failure or deadlock, whether raised inside fn or at
// commit, is returned as ErrConcurrentUpdate so the caller can retry.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var err error
	if s.txOpts != nil {
		err = s.db.WithContext(ctx).Transaction(fn, s.txOpts)
	} else {
		err = s.db.WithContext(ctx).Transaction(fn)
	}
	if isRetryable(err) {
		return apperrors.Wrap(apperrors.ErrConcurrentUpdate, err)
	}
	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
}

// OwnedBy scopes a query to rows belonging to userID.
func OwnedBy(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Find loads the first T owned by userID matching query/args.
// It returns found=false rather than an error when nothing matches.
func Find[T any](tx *gorm.DB, userID string, query string, args ...interface{}) (*T, bool, error) {
	var out T
	err := tx.Scopes(OwnedBy(userID)).Where(query, args...).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &out, true, nil
}

// List loads every T owned by userID matching query/args in the given order.
func List[T any](tx *gorm.DB, userID string, order string, query string, args ...interface{}) ([]T, error) {
	var out []T
	q := tx.Scopes(OwnedBy(userID))
	if query != "" {
		q = q.Where(query, args...)
	}
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
