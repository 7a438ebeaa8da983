package main

import (
	"github.com/gin-gonic/gin"

	"bookly-backend/internal/infrastructure/metrics"
	"bookly-backend/internal/shared/middleware"
	"bookly-backend/internal/shared/response"
	"bookly-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
		middleware.Metrics(c.Metrics),
	)

	router.GET("/metrics", gin.WrapH(metrics.Handler(c.Registry)))

	api := router.Group("/api")
	{
		api.GET("/status", c.HealthHandler.Status)
		api.GET("/test-db", c.HealthHandler.TestDB)

		limited := api.Group("", c.RateLimiter.Middleware())
		setupUserRoutes(limited, c)
		setupBookRoutes(limited, c)
		setupProfileRoutes(limited, c)
		setupUserFullRoutes(limited, c)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	return router
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	{
		users.GET("", c.UserHandler.ListUsers)
		users.GET("/:id", c.UserHandler.GetUser)
		users.POST("", c.UserHandler.CreateUser)
		users.PUT("/:id", c.UserHandler.UpdateUser)
		users.DELETE("/:id", c.UserHandler.DeleteUser)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.POST("", c.BookHandler.CreateBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// PROFILE ROUTES
// ========================================
func setupProfileRoutes(api *gin.RouterGroup, c *container.Container) {
	profiles := api.Group("/profiles")
	{
		profiles.GET("", c.ProfileHandler.ListProfiles)
		profiles.GET("/:userId", c.ProfileHandler.GetProfile)
		profiles.POST("", c.ProfileHandler.CreateProfile)
		profiles.PUT("/:userId", c.ProfileHandler.UpdateProfile)
		profiles.DELETE("/:userId", c.ProfileHandler.DeleteProfile)

		profiles.POST("/:userId/history", c.ProfileHandler.AddHistoryEntry)
		profiles.PUT("/:userId/history/:bookId", c.ProfileHandler.UpdateHistoryEntry)
		profiles.DELETE("/:userId/history/:bookId", c.ProfileHandler.RemoveHistoryEntry)
	}
}

// ========================================
// AGGREGATION ROUTES
// ========================================
func setupUserFullRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/user-full/:id", c.UserFullHandler.GetUserFull)
}
