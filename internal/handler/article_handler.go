package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/domain"
	"blog-api/internal/middleware"
	"blog-api/internal/service"
)

// ArticleHandler handles article HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// CreateArticleRequest is the body of POST /articles.
type CreateArticleRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateArticleRequest is the body of PUT /articles/:id. Absent or null
// fields are left unchanged.
type UpdateArticleRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// List handles GET /articles?search=&author=
func (h *ArticleHandler) List(c *gin.Context) {
	filter := domain.ArticleFilter{
		Search:   c.Query("search"),
		AuthorID: c.Query("author"),
	}

	articles, err := h.articleService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Article")
		return
	}

	c.JSON(http.StatusOK, toArticleViewResponses(articles))
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), middleware.GetUserID(c), service.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		respondError(c, err, "Article")
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// Get handles GET /articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Article")
		return
	}

	c.JSON(http.StatusOK, toArticleViewResponse(article))
}

// Update handles PUT /articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	// every field is optional, so an empty body is an empty update and the
	// existence and ownership checks still decide the outcome
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadBody(c, err)
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), domain.ArticleUpdate{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		respondError(c, err, "Article")
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.articleService.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "Article")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msgArticleDeleted})
}
