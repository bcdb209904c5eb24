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

// CommentService runs comment operations with existence and ownership checks.
type CommentService struct {
	comments  repository.CommentRepository
	validator *validator.Validator
	guard     storeGuard
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository, v *validator.Validator, reporter FailureReporter) *CommentService {
	return &CommentService{
		comments:  comments,
		validator: v,
		guard:     newStoreGuard(reporter),
	}
}

// ListByArticle returns an article's comments, newest first.
func (s *CommentService) ListByArticle(ctx context.Context, articleID string) (list []domain.CommentWithAuthor, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("comment", "list_by_article", err, timer.Seconds()) }()

	list, err = s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, s.guard.check(ctx, "list comments by article", err)
	}
	return list, nil
}

// ListByAuthor returns a user's comments, newest first.
func (s *CommentService) ListByAuthor(ctx context.Context, userID string) (list []domain.CommentWithArticle, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("comment", "list_by_author", err, timer.Seconds()) }()

	list, err = s.comments.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, s.guard.check(ctx, "list comments by author", err)
	}
	return list, nil
}

// Add posts a comment by callerID. The article must exist.
func (s *CommentService) Add(ctx context.Context, callerID, articleID, content string) (comment *domain.Comment, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("comment", "add", err, timer.Seconds()) }()

	comment = &domain.Comment{
		ID:        uuid.New().String(),
		Content:   content,
		ArticleID: articleID,
		AuthorID:  callerID,
	}
	if err := s.validator.ValidateComment(comment); err != nil {
		return nil, err
	}

	found, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, s.guard.check(ctx, "create comment", err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	logger.WithUserID(ctx, callerID).InfoContext(ctx, "Comment added",
		slog.String("comment_id", comment.ID),
		slog.String("article_id", articleID))
	return comment, nil
}

// Delete removes a comment owned by callerID.
func (s *CommentService) Delete(ctx context.Context, callerID, id string) (err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveContentOp("comment", "delete", err, timer.Seconds()) }()

	found, err := s.comments.Delete(ctx, id, func(current *domain.Comment) error {
		if callerID == "" || current.AuthorID != callerID {
			return domain.ErrForbidden
		}
		return nil
	})
	if err != nil {
		return s.guard.check(ctx, "delete comment", err)
	}
	if !found {
		return domain.ErrNotFound
	}

	logger.WithUserID(ctx, callerID).InfoContext(ctx, "Comment deleted",
		slog.String("comment_id", id))
	return nil
}
