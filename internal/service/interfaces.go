package service

import (
	"context"

	"blog-api/internal/domain"
)

// FailureReporter is told about failed store operations so the connection
// can be re-checked straight away.
type FailureReporter interface {
	ReportFailure(err error)
}

// AuthServiceInterface defines the interface for credential operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login checks credentials and issues a token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// ArticleServiceInterface defines the interface for article operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// List returns the articles matching filter, newest first.
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error)
	// Create stores a new article owned by callerID.
	Create(ctx context.Context, callerID string, input ArticleInput) (*domain.Article, error)
	// Get returns one article with its author.
	Get(ctx context.Context, id string) (*domain.ArticleView, error)
	// Update changes an article owned by callerID.
	Update(ctx context.Context, callerID, id string, update domain.ArticleUpdate) (*domain.Article, error)
	// Delete removes an article owned by callerID together with its comments.
	Delete(ctx context.Context, callerID, id string) error
}

// CommentServiceInterface defines the interface for comment operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	// ListByArticle returns an article's comments, newest first.
	ListByArticle(ctx context.Context, articleID string) ([]domain.CommentWithAuthor, error)
	// ListByAuthor returns a user's comments, newest first.
	ListByAuthor(ctx context.Context, userID string) ([]domain.CommentWithArticle, error)
	// Add posts a comment by callerID on an existing article.
	Add(ctx context.Context, callerID, articleID, content string) (*domain.Comment, error)
	// Delete removes a comment owned by callerID.
	Delete(ctx context.Context, callerID, id string) error
}
