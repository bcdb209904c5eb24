package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-api/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// ListByArticle returns an article's comments with their authors, newest
// first. An unknown article yields an empty list.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.CommentWithAuthor, error) {
	comments := make([]domain.CommentWithAuthor, 0)
	if !validID(articleID) {
		return comments, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.content, c.article_id, c.author_id, c.created_at, u.username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.article_id = $1
		ORDER BY c.created_at DESC, c.id
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query comments by article: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.CommentWithAuthor
		if err := rows.Scan(&c.ID, &c.Content, &c.ArticleID, &c.AuthorID, &c.CreatedAt, &c.Author.Username); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.Author.ID = c.AuthorID
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// ListByAuthor returns a user's comments with their articles, newest first.
func (r *PostgresCommentRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.CommentWithArticle, error) {
	comments := make([]domain.CommentWithArticle, 0)
	if !validID(authorID) {
		return comments, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.content, c.article_id, c.author_id, c.created_at, a.title
		FROM comments c
		JOIN articles a ON a.id = c.article_id
		WHERE c.author_id = $1
		ORDER BY c.created_at DESC, c.id
	`, authorID)
	if err != nil {
		return nil, fmt.Errorf("query comments by author: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.CommentWithArticle
		if err := rows.Scan(&c.ID, &c.Content, &c.ArticleID, &c.AuthorID, &c.CreatedAt, &c.Article.Title); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.Article.ID = c.ArticleID
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// Create inserts a comment while holding a share lock on its article, so it
// cannot interleave with the article's deletion. It reports false when the
// article does not exist, and domain.ErrUnauthorized when the author does not.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) (bool, error) {
	if !validID(comment.ArticleID) {
		return false, nil
	}
	if err := checkAuthorID(comment.AuthorID); err != nil {
		return false, err
	}

	found := false
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		article, err := lockArticle(ctx, tx, comment.ArticleID, "FOR SHARE")
		if err != nil || article == nil {
			return err
		}
		found = true

		err = tx.QueryRow(ctx, `
			INSERT INTO comments (id, content, article_id, author_id)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at
		`, comment.ID, comment.Content, comment.ArticleID, comment.AuthorID).Scan(&comment.CreatedAt)
		if err != nil {
			// the article is share-locked, so only the author reference can fail
			if gone := authorGone(err, comment.AuthorID); gone != nil {
				return gone
			}
			return fmt.Errorf("insert comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Delete locks the comment, lets authorize vet it, then removes it. It
// reports false when the comment does not exist.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string, authorize CommentAuthorizer) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	found := false
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var c domain.Comment
		err := tx.QueryRow(ctx, `
			SELECT id, content, article_id, author_id, created_at
			FROM comments
			WHERE id = $1
			FOR UPDATE
		`, id).Scan(&c.ID, &c.Content, &c.ArticleID, &c.AuthorID, &c.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock comment: %w", err)
		}
		found = true

		if err := authorize(&c); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return found, err
	}
	return found, nil
}
