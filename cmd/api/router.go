package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mediadb-backend/internal/shared/middleware"
	"mediadb-backend/internal/shared/response"
	"mediadb-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Metrics(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Write endpoints carry the auth middleware; public reads go without
	// it and handlers never see an anonymous current user.
	authRequired := middleware.Auth(c.Tokens, c.UserRepo)

	v1 := router.Group("/api/v1")
	{
		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c, authRequired)
		setupCategoryRoutes(v1, c, authRequired)
		setupGenreRoutes(v1, c, authRequired)
		setupTitleRoutes(v1, c, authRequired)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", c.AuthHandler.Signup)
		auth.POST("/token", c.AuthHandler.IssueToken)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	users := v1.Group("/users")
	users.Use(authRequired)
	{
		users.GET("", c.UserHandler.List)
		users.POST("", c.UserHandler.Create)

		// /me must register before /:username so gin does not treat the
		// literal segment as a username.
		users.GET("/me", c.UserHandler.GetMe)
		users.PATCH("/me", c.UserHandler.UpdateMe)

		users.GET("/:username", c.UserHandler.Get)
		users.PATCH("/:username", c.UserHandler.Update)
		users.DELETE("/:username", c.UserHandler.Delete)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:slug", c.CategoryHandler.Get)
		categories.POST("", authRequired, c.CategoryHandler.Create)
		categories.DELETE("/:slug", authRequired, c.CategoryHandler.Delete)
	}
}

// ========================================
// GENRE ROUTES
// ========================================
func setupGenreRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	genres := v1.Group("/genres")
	{
		genres.GET("", c.GenreHandler.List)
		genres.GET("/:slug", c.GenreHandler.Get)
		genres.POST("", authRequired, c.GenreHandler.Create)
		genres.DELETE("/:slug", authRequired, c.GenreHandler.Delete)
	}
}

// ========================================
// TITLE, REVIEW AND COMMENT ROUTES
// ========================================
func setupTitleRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	titles := v1.Group("/titles")
	{
		titles.GET("", c.TitleHandler.List)
		titles.GET("/:title_id", c.TitleHandler.Get)
		titles.POST("", authRequired, c.TitleHandler.Create)
		titles.PATCH("/:title_id", authRequired, c.TitleHandler.Update)
		titles.DELETE("/:title_id", authRequired, c.TitleHandler.Delete)

		reviews := titles.Group("/:title_id/reviews")
		{
			reviews.GET("", c.ReviewHandler.List)
			reviews.GET("/:review_id", c.ReviewHandler.Get)
			reviews.POST("", authRequired, c.ReviewHandler.Create)
			reviews.PATCH("/:review_id", authRequired, c.ReviewHandler.Update)
			reviews.DELETE("/:review_id", authRequired, c.ReviewHandler.Delete)

			comments := reviews.Group("/:review_id/comments")
			{
				comments.GET("", c.CommentHandler.List)
				comments.GET("/:comment_id", c.CommentHandler.Get)
				comments.POST("", authRequired, c.CommentHandler.Create)
				comments.PATCH("/:comment_id", authRequired, c.CommentHandler.Update)
				comments.DELETE("/:comment_id", authRequired, c.CommentHandler.Delete)
			}
		}
	}
}

// healthCheckHandler reports database and cache reachability. The cache
// is optional, so its state never fails the check.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "database unreachable")
			return
		}

		cacheStatus := "disabled"
		if c.Cache != nil {
			cacheStatus = "ok"
			if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
				cacheStatus = "unreachable"
			}
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
			"cache":   cacheStatus,
		})
	}
}
