package repository

import (
	"context"

	"blog-api/internal/domain"
)

// Getters return (nil, nil) when the row does not exist. A malformed id is
// treated the same as a missing row.

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ArticleAuthorizer vets the locked row before a mutation goes ahead.
type ArticleAuthorizer func(current *domain.Article) error

// CommentAuthorizer vets the locked row before a comment is removed.
type CommentAuthorizer func(current *domain.Comment) error

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error)
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.ArticleView, error)
	Update(ctx context.Context, id string, update domain.ArticleUpdate, authorize ArticleAuthorizer) (*domain.Article, error)
	Delete(ctx context.Context, id string, authorize ArticleAuthorizer) (bool, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID string) ([]domain.CommentWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.CommentWithArticle, error)
	Create(ctx context.Context, comment *domain.Comment) (bool, error)
	Delete(ctx context.Context, id string, authorize CommentAuthorizer) (bool, error)
}
