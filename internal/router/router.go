package router

import (
	"stackit/internal/handlers"
	"stackit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	questionHandler := handlers.NewQuestionHandler()
	voteHandler := handlers.NewVoteHandler()
	notificationHandler := handlers.NewNotificationHandler()
	adminHandler := handlers.NewAdminHandler()

	// Public routes
	r.GET("/questions", questionHandler.List)        // All questions, newest first
	r.GET("/questions/hot", questionHandler.Hot)     // Most viewed questions
	r.GET("/question/:id", questionHandler.Detail)   // Question detail, counts the view

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/ask", questionHandler.Create)                    // Post a question
		authorized.POST("/question/:id/answer", questionHandler.CreateAnswer) // Answer a question
		authorized.POST("/vote", voteHandler.Vote)                         // Cast or change a vote
		authorized.POST("/accept_answer", voteHandler.Accept)              // Accept an answer

		authorized.GET("/notifications", notificationHandler.List)    // Full inbox, marks seen
		authorized.GET("/api/notifications", notificationHandler.Recent) // Badge polling, read-only
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/users", adminHandler.Users)
		admin.GET("/questions", adminHandler.Questions)
		admin.GET("/answers", adminHandler.Answers)
		admin.POST("/users/:id/ban", adminHandler.Ban)
		admin.POST("/users/:id/unban", adminHandler.Unban)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
	}
}
