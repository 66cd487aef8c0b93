package routes

import (
	"github.com/solutiontech214/MindTune/controllers"
	"github.com/solutiontech214/MindTune/middleware"
	"github.com/solutiontech214/MindTune/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup, checkins *services.CheckinService, diary *services.DiaryService, engine *services.RecommendationEngine) {
	router.POST("/signup", controllers.Signup())
	router.POST("/login", controllers.Login())
	router.POST("/forgot-password", controllers.ForgotPassword())
	router.POST("/reset-password", controllers.ResetPassword())
	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		// Current user (all authenticated)
		protected.GET("/me", controllers.GetMe())

		// ADMIN only
		protected.GET("/users",
			middleware.Authorize("ADMIN"),
			controllers.GetUsers(),
		)

		// USER (self) + ADMIN
		protected.GET("/user/:id",
			middleware.Authorize("ADMIN", "USER"),
			controllers.GetUser(),
		)

		// Daily check-ins (authenticated users)
		protected.POST("/checkins", controllers.SubmitCheckin(checkins))
		protected.GET("/checkins", controllers.GetCheckin(checkins))
		protected.GET("/checkins/month", controllers.GetMonthlyCheckins(checkins))
		protected.GET("/checkins/stats", controllers.GetMonthlyStats(checkins))
		protected.GET("/checkins/streak", controllers.GetCheckinStreak(checkins))

		// Diary / journal entries (authenticated users, owner-scoped)
		protected.POST("/diary", controllers.CreateDiaryEntry(diary))
		protected.GET("/diary", controllers.GetDiaryEntries(diary))
		protected.GET("/diary/:id", controllers.GetDiaryEntry(diary))
		protected.PUT("/diary/:id", controllers.UpdateDiaryEntry(diary))
		protected.DELETE("/diary/:id", controllers.DeleteDiaryEntry(diary))

		// Music recommendations and catalog
		protected.GET("/music/tracks", controllers.GetTracks(engine))
		protected.GET("/music/tracks/:id", controllers.GetTrack(engine))
		protected.GET("/music/tracks/:id/audio", controllers.StreamTrackAudio(engine))
		protected.POST("/music/recommendations", controllers.GetRecommendations(engine))
	}
}
