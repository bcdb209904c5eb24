package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-api/internal/middleware"
	"blog-api/internal/service"
)

// StoreStatus is what the router needs from the connection supervisor.
type StoreStatus interface {
	ConnectionState
	middleware.StoreState
}

// RouterDeps bundles everything the HTTP surface is built from.
type RouterDeps struct {
	Auth     service.AuthServiceInterface
	Articles service.ArticleServiceInterface
	Comments service.CommentServiceInterface
	Tokens   middleware.TokenVerifier
	Store    StoreStatus
}

// NewRouter wires middleware, handlers and routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	authHandler := NewAuthHandler(deps.Auth)
	articleHandler := NewArticleHandler(deps.Articles)
	commentHandler := NewCommentHandler(deps.Comments)
	healthHandler := NewHealthHandler(deps.Store)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	// Health and metrics endpoints
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.Auth(deps.Tokens)
	api := router.Group("", middleware.RequireStore(deps.Store))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/:id", articleHandler.Get)
			articles.POST("", requireAuth, articleHandler.Create)
			articles.PUT("/:id", requireAuth, articleHandler.Update)
			articles.DELETE("/:id", requireAuth, articleHandler.Delete)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/article/:articleId", commentHandler.ListByArticle)
			comments.GET("/author/:userId", commentHandler.ListByAuthor)
			comments.POST("", requireAuth, commentHandler.Add)
			comments.DELETE("/:id", requireAuth, commentHandler.Delete)
		}
	}

	return router
}
