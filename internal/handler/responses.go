package handler

import (
	"blog-api/internal/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is the body of acknowledgements such as deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse is returned by POST /auth/signup.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ArticleResponse is an article on the write path; the author is a bare reference.
type ArticleResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Tags      []string         `json:"tags"`
	Author    domain.AuthorRef `json:"author"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

// ArticleViewResponse is an article on the read path with its author resolved.
type ArticleViewResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Tags      []string          `json:"tags"`
	Author    domain.AuthorView `json:"author"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
}

// CommentResponse is a comment on the write path.
type CommentResponse struct {
	ID        string           `json:"id"`
	Content   string           `json:"content"`
	ArticleID string           `json:"articleId"`
	Author    domain.AuthorRef `json:"author"`
	CreatedAt string           `json:"createdAt"`
}

// CommentWithAuthorResponse is a comment listed under its article.
type CommentWithAuthorResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	ArticleID string            `json:"articleId"`
	Author    domain.AuthorView `json:"author"`
	CreatedAt string            `json:"createdAt"`
}

// CommentWithArticleResponse is a comment listed on its author's profile.
type CommentWithArticleResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Article   domain.ArticleRef `json:"article"`
	Author    domain.AuthorRef  `json:"author"`
	CreatedAt string            `json:"createdAt"`
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Tags:      domain.NormalizeTags(a.Tags),
		Author:    domain.AuthorRef{ID: a.AuthorID},
		CreatedAt: a.CreatedAt.Format(TimeFormat),
		UpdatedAt: a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleViewResponse(v *domain.ArticleView) ArticleViewResponse {
	return ArticleViewResponse{
		ID:        v.ID,
		Title:     v.Title,
		Content:   v.Content,
		Tags:      domain.NormalizeTags(v.Tags),
		Author:    v.Author,
		CreatedAt: v.CreatedAt.Format(TimeFormat),
		UpdatedAt: v.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleViewResponses(views []domain.ArticleView) []ArticleViewResponse {
	out := make([]ArticleViewResponse, len(views))
	for i := range views {
		out[i] = toArticleViewResponse(&views[i])
	}
	return out
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		ArticleID: c.ArticleID,
		Author:    domain.AuthorRef{ID: c.AuthorID},
		CreatedAt: c.CreatedAt.Format(TimeFormat),
	}
}

func toCommentWithAuthorResponses(comments []domain.CommentWithAuthor) []CommentWithAuthorResponse {
	out := make([]CommentWithAuthorResponse, len(comments))
	for i, c := range comments {
		out[i] = CommentWithAuthorResponse{
			ID:        c.ID,
			Content:   c.Content,
			ArticleID: c.ArticleID,
			Author:    c.Author,
			CreatedAt: c.CreatedAt.Format(TimeFormat),
		}
	}
	return out
}

func toCommentWithArticleResponses(comments []domain.CommentWithArticle) []CommentWithArticleResponse {
	out := make([]CommentWithArticleResponse, len(comments))
	for i, c := range comments {
		out[i] = CommentWithArticleResponse{
			ID:        c.ID,
			Content:   c.Content,
			Article:   c.Article,
			Author:    domain.AuthorRef{ID: c.AuthorID},
			CreatedAt: c.CreatedAt.Format(TimeFormat),
		}
	}
	return out
}
