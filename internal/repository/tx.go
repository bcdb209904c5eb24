package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-api/internal/domain"
)

const (
	articlesAuthorConstraint = "articles_author_id_fkey"
	commentsAuthorConstraint = "comments_author_id_fkey"
)

// inTx runs fn inside a transaction and commits when fn returns nil.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// validID reports whether id can address a row at all.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// authorGone maps a write whose author row does not exist (a token outliving
// its user) to domain.ErrUnauthorized. It returns nil for any other error.
func authorGone(err error, authorID string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return nil
	}
	if pgErr.ConstraintName != articlesAuthorConstraint && pgErr.ConstraintName != commentsAuthorConstraint {
		return nil
	}
	return fmt.Errorf("%w: author %s does not exist", domain.ErrUnauthorized, authorID)
}

// checkAuthorID rejects author ids that could never match a user row.
func checkAuthorID(authorID string) error {
	if !validID(authorID) {
		return fmt.Errorf("%w: malformed author id", domain.ErrUnauthorized)
	}
	return nil
}
