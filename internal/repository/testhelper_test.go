package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

// TestDB holds the test database connection and container
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB starts a PostgreSQL container and applies the migrations.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("blog_test"),
		postgres.WithUsername("blog"),
		postgres.WithPassword("blog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create migrate instance: %v", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}
	m.Close()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to ping database: %v", err)
	}

	return &TestDB{Pool: pool, Container: pgContainer, ConnStr: connStr}
}

// Cleanup closes the connection pool and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// Reset empties every table for test isolation.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()
	_, err := tdb.Pool.Exec(context.Background(), "TRUNCATE TABLE comments, articles, users CASCADE")
	require.NoError(t, err)
}

// CountRows returns the number of rows in table matching the optional where clause.
func (tdb *TestDB) CountRows(t *testing.T, table, where string, args ...any) int {
	t.Helper()
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, tdb.Pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func seedUser(t *testing.T, tdb *TestDB, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           uuid.New().String(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "$2a$04$not-a-real-hash",
	}
	require.NoError(t, repository.NewPostgresUserRepository(tdb.Pool).Create(context.Background(), u))
	return u
}

func seedArticle(t *testing.T, tdb *TestDB, author *domain.User, title string, tags ...string) *domain.Article {
	t.Helper()
	a := &domain.Article{
		ID:       uuid.New().String(),
		Title:    title,
		Content:  "content of " + title,
		Tags:     tags,
		AuthorID: author.ID,
	}
	require.NoError(t, repository.NewPostgresArticleRepository(tdb.Pool).Create(context.Background(), a))
	return a
}

func seedComment(t *testing.T, tdb *TestDB, author *domain.User, article *domain.Article, content string) *domain.Comment {
	t.Helper()
	c := &domain.Comment{
		ID:        uuid.New().String(),
		Content:   content,
		ArticleID: article.ID,
		AuthorID:  author.ID,
	}
	found, err := repository.NewPostgresCommentRepository(tdb.Pool).Create(context.Background(), c)
	require.NoError(t, err)
	require.True(t, found)
	return c
}

func allow[T any](*T) error { return nil }

func deny[T any](*T) error { return domain.ErrForbidden }
