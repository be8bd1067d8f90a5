package routes

import (
	"net/http"

	"blogspace-api/config"
	"blogspace-api/controllers"
	"blogspace-api/middleware"
	"blogspace-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	authorController := controllers.NewAuthorController(db)
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db, emailService)
	pageController := controllers.NewPageController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register/", authController.Register)
		auth.POST("/login/", authController.Login)
	}

	// Author routes
	authors := r.Group("/authors")
	{
		authors.POST("/", middleware.AuthRequired(cfg.JWTSecret), authorController.CreateAuthor)
		authors.GET("/:id/", authorController.GetAuthor)
	}

	// Post routes
	posts := r.Group("/posts")
	{
		posts.GET("/", postController.GetPosts)
		posts.GET("/:id/", postController.GetPost)
		posts.POST("/create/", middleware.AuthRequired(cfg.JWTSecret), postController.CreatePost)
		posts.PUT("/:id/edit/", middleware.AuthRequired(cfg.JWTSecret), postController.UpdatePost)
		posts.DELETE("/:id/delete/", middleware.AuthRequired(cfg.JWTSecret), postController.DeletePost)

		// Comments allow anonymous callers; rate limited per IP
		posts.GET("/:id/comments/", commentController.GetComments)
		posts.POST("/:id/comments/",
			middleware.AuthOptional(cfg.JWTSecret),
			middleware.RateLimit(30, 10),
			commentController.CreateComment)
	}

	// Server-rendered pages
	blog := r.Group("/blog")
	{
		blog.GET("/", pageController.PostListPage)
		blog.GET("/:id/", pageController.PostDetailPage)
		blog.GET("/create/", pageController.NewPostPage)
		blog.POST("/create/", pageController.CreatePostForm)
		blog.POST("/:id/comment/", pageController.CreateCommentForm)
	}
}

// SetupCORS allows cross-origin access to the API.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
