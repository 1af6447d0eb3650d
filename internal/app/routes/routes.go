package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushare/backend/internal/app/controllers"
	"github.com/campushare/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	noteController *controllers.NoteController,
	bookController *controllers.BookController,
	paperController *controllers.PaperController,
	requestController *controllers.RequestController,
	feedbackController *controllers.FeedbackController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile and notifications
		users := authenticated.Group("/users/me")
		{
			users.GET("", userController.GetProfile)
			users.PUT("", userController.UpdateProfile)
			users.PUT("/password", userController.ChangePassword)
			users.GET("/notifications", userController.Notifications)
			users.PUT("/notifications/:id/read", userController.MarkNotificationRead)
		}

		// Class notes
		notes := authenticated.Group("/notes")
		{
			notes.GET("", noteController.List)
			notes.GET("/:id", noteController.Get)
			notes.POST("", noteController.Create)
			notes.PUT("/:id", noteController.Update)
			notes.DELETE("/:id", noteController.Delete)
		}

		// Reference books
		books := authenticated.Group("/books")
		{
			books.GET("", bookController.List)
			books.GET("/:id", bookController.Get)
			books.POST("", bookController.Create)
			books.PUT("/:id", bookController.Update)
			books.DELETE("/:id", bookController.Delete)
		}

		// Past-year question papers
		papers := authenticated.Group("/papers")
		{
			papers.GET("", paperController.List)
			papers.GET("/:id", paperController.Get)
			papers.POST("", paperController.Create)
			papers.PUT("/:id", paperController.Update)
			papers.DELETE("/:id", paperController.Delete)
		}

		// Material requests
		requests := authenticated.Group("/requests")
		{
			requests.GET("", requestController.List)
			requests.GET("/:id", requestController.Get)
			requests.POST("", requestController.Create)
			requests.DELETE("/:id", requestController.Delete)
		}

		// Feedback
		authenticated.POST("/feedback", feedbackController.Submit)

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", adminController.ListUsers)
				adminUsers.PUT("/:id/blocked", adminController.SetUserBlocked)
				adminUsers.PUT("/:id/can-upload", adminController.SetUserCanUpload)
				adminUsers.PUT("/:id/role", adminController.SetUserRole)
				adminUsers.DELETE("/:id", adminController.DeleteUser)
			}

			moderation := admin.Group("/moderation")
			{
				moderation.GET("/notes", adminController.PendingNotes)
				moderation.PUT("/notes/:id", adminController.ModerateNote)
				moderation.GET("/books", adminController.PendingBooks)
				moderation.PUT("/books/:id", adminController.ModerateBook)
				moderation.GET("/papers", adminController.PendingPapers)
				moderation.PUT("/papers/:id", adminController.ModeratePaper)
			}

			admin.PUT("/requests/:id/status", adminController.ResolveRequest)

			adminFeedback := admin.Group("/feedback")
			{
				adminFeedback.GET("", adminController.ListFeedback)
				adminFeedback.DELETE("/:id", adminController.DeleteFeedback)
			}
		}
	}
}
