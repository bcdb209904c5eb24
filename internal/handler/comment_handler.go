package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/middleware"
	"blog-api/internal/service"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddCommentRequest is the body of POST /comments.
type AddCommentRequest struct {
	Content   string `json:"content"`
	ArticleID string `json:"articleId"`
}

// ListByArticle handles GET /comments/article/:articleId
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	comments, err := h.commentService.ListByArticle(c.Request.Context(), c.Param("articleId"))
	if err != nil {
		respondError(c, err, "Article")
		return
	}

	c.JSON(http.StatusOK, toCommentWithAuthorResponses(comments))
}

// ListByAuthor handles GET /comments/author/:userId
func (h *CommentHandler) ListByAuthor(c *gin.Context) {
	comments, err := h.commentService.ListByAuthor(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, toCommentWithArticleResponses(comments))
}

// Add handles POST /comments
func (h *CommentHandler) Add(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), middleware.GetUserID(c), req.ArticleID, req.Content)
	if err != nil {
		respondError(c, err, "Article")
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Delete handles DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "Comment")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msgCommentDeleted})
}
