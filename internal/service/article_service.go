package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"blog-api/internal/domain"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/validator"
)

// ArticleInput is the payload of a new article.
type ArticleInput struct {
	Title   string
	Content string
	Tags    []string
}

// ArticleService runs article operations with existence and ownership checks.
type ArticleService struct {
	articles  repository.ArticleRepository
	validator *validator.Validator
	guard     storeGuard
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles repository.ArticleRepository, v *validator.Validator, reporter FailureReporter) *ArticleService {
	return &ArticleService{
		articles:  articles,
		validator: v,
		guard:     newStoreGuard(reporter),
	}
}

// List returns every article matching filter, newest first.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter) (list []domain.ArticleView, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("article", "list", err, timer.Seconds()) }()

	list, err = s.articles.List(ctx, filter)
	if err != nil {
		return nil, s.guard.check(ctx, "list articles", err)
	}
	return list, nil
}

// Create stores a new article owned by callerID.
func (s *ArticleService) Create(ctx context.Context, callerID string, input ArticleInput) (article *domain.Article, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("article", "create", err, timer.Seconds()) }()

	article = &domain.Article{
		ID:       uuid.New().String(),
		Title:    input.Title,
		Content:  input.Content,
		Tags:     domain.NormalizeTags(input.Tags),
		AuthorID: callerID,
	}
	if err := s.validator.ValidateArticle(article); err != nil {
		return nil, err
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, s.guard.check(ctx, "create article", err)
	}

	logger.WithUserID(ctx, callerID).InfoContext(ctx, "Article created",
		slog.String("article_id", article.ID))
	return article, nil
}

// Get returns one article with its author resolved.
func (s *ArticleService) Get(ctx context.Context, id string) (view *domain.ArticleView, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("article", "get", err, timer.Seconds()) }()

	view, err = s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, s.guard.check(ctx, "get article", err)
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	return view, nil
}

// Update applies update to an article owned by callerID. A missing article
// is reported before a foreign one, and a foreign one before a bad payload.
func (s *ArticleService) Update(ctx context.Context, callerID, id string, update domain.ArticleUpdate) (article *domain.Article, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("article", "update", err, timer.Seconds()) }()

	article, err = s.articles.Update(ctx, id, update, func(current *domain.Article) error {
		if err := requireArticleOwner(callerID, current); err != nil {
			return err
		}
		return s.validator.ValidateArticleUpdate(&update)
	})
	if err != nil {
		return nil, s.guard.check(ctx, "update article", err)
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}

	logger.WithUserID(ctx, callerID).InfoContext(ctx, "Article updated",
		slog.String("article_id", id))
	return article, nil
}

// Delete removes an article owned by callerID and all of its comments.
func (s *ArticleService) Delete(ctx context.Context, callerID, id string) (err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("article", "delete", err, timer.Seconds()) }()

	found, err := s.articles.Delete(ctx, id, func(current *domain.Article) error {
		return requireArticleOwner(callerID, current)
	})
	if err != nil {
		return s.guard.check(ctx, "delete article", err)
	}
	if !found {
		return domain.ErrNotFound
	}

	logger.WithUserID(ctx, callerID).InfoContext(ctx, "Article deleted",
		slog.String("article_id", id))
	return nil
}

func requireArticleOwner(callerID string, a *domain.Article) error {
	if callerID == "" || a.AuthorID != callerID {
		return domain.ErrForbidden
	}
	return nil
}
