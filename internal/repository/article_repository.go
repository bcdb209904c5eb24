package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-api/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

const articleViewColumns = `
	a.id, a.title, a.content, a.tags, a.author_id, a.created_at, a.updated_at, u.username`

// List returns every article matching filter, newest first. The search term
// matches title or any tag as a literal, case-insensitive substring.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.ArticleView, 0)
	for rows.Next() {
		var v domain.ArticleView
		if err := rows.Scan(&v.ID, &v.Title, &v.Content, &v.Tags, &v.AuthorID, &v.CreatedAt, &v.UpdatedAt, &v.Author.Username); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		v.Author.ID = v.AuthorID
		v.Tags = domain.NormalizeTags(v.Tags)
		articles = append(articles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

func buildListQuery(filter domain.ArticleFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.HasSearch() {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			`(a.title ILIKE $%d ESCAPE '\' OR EXISTS (SELECT 1 FROM unnest(a.tags) AS tag WHERE tag ILIKE $%d ESCAPE '\'))`,
			n, n))
	}
	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		conditions = append(conditions, fmt.Sprintf("a.author_id::text = $%d", len(args)))
	}

	query := `SELECT` + articleViewColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id`
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t\tORDER BY a.created_at DESC, a.id"

	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes every LIKE metacharacter in s match itself.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Create inserts an article and fills in its timestamps.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	article.Tags = domain.NormalizeTags(article.Tags)
	if err := checkAuthorID(article.AuthorID); err != nil {
		return err
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (id, title, content, tags, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, article.ID, article.Title, article.Content, article.Tags, article.AuthorID).Scan(&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if gone := authorGone(err, article.AuthorID); gone != nil {
			return gone
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID retrieves an article with its author resolved.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.ArticleView, error) {
	if !validID(id) {
		return nil, nil
	}

	var v domain.ArticleView
	err := r.pool.QueryRow(ctx, `SELECT`+articleViewColumns+`
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`, id).Scan(&v.ID, &v.Title, &v.Content, &v.Tags, &v.AuthorID, &v.CreatedAt, &v.UpdatedAt, &v.Author.Username)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	v.Author.ID = v.AuthorID
	v.Tags = domain.NormalizeTags(v.Tags)
	return &v, nil
}

// Update locks the row, lets authorize vet it, then applies update. It
// returns (nil, nil) when the article does not exist.
func (r *PostgresArticleRepository) Update(ctx context.Context, id string, update domain.ArticleUpdate, authorize ArticleAuthorizer) (*domain.Article, error) {
	if !validID(id) {
		return nil, nil
	}

	var updated *domain.Article
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		current, err := lockArticle(ctx, tx, id, "FOR UPDATE")
		if err != nil || current == nil {
			return err
		}
		if err := authorize(current); err != nil {
			return err
		}

		update.Apply(current)
		current.Tags = domain.NormalizeTags(current.Tags)

		err = tx.QueryRow(ctx, `
			UPDATE articles
			SET title = $2, content = $3, tags = $4, updated_at = clock_timestamp()
			WHERE id = $1
			RETURNING updated_at
		`, current.ID, current.Title, current.Content, current.Tags).Scan(&current.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update article: %w", err)
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete locks the row, lets authorize vet it, then removes the article's
// comments and the article in one transaction. It reports false when the
// article does not exist.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string, authorize ArticleAuthorizer) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	found := false
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		current, err := lockArticle(ctx, tx, id, "FOR UPDATE")
		if err != nil || current == nil {
			return err
		}
		found = true
		if err := authorize(current); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		return nil
	})
	if err != nil {
		return found, err
	}
	return found, nil
}

// lockArticle reads the article row under the given lock clause. A missing
// row yields (nil, nil).
func lockArticle(ctx context.Context, tx pgx.Tx, id, lock string) (*domain.Article, error) {
	var a domain.Article
	err := tx.QueryRow(ctx, `
		SELECT id, title, content, tags, author_id, created_at, updated_at
		FROM articles
		WHERE id = $1
		`+lock, id).Scan(&a.ID, &a.Title, &a.Content, &a.Tags, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock article: %w", err)
	}
	return &a, nil
}
