package routes

import (
	"os"
	"strconv"
	"time"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func historyLimit() int {
	if v := os.Getenv("CHAT_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 10
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	foodSvc := services.NewFoodService(config.DB)
	userSvc := services.NewUserService(config.DB)
	reportSvc := services.NewReportService(config.DB)
	sessions := services.NewConversationStore(historyLimit(), 30*time.Minute)
	chatSvc := services.NewChatService(config.DB, services.NewOllamaService(), sessions)

	foodCtrl := controllers.NewFoodController(foodSvc, hub)
	userCtrl := controllers.NewUserController(userSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	rtCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/google", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
		auth.GET("/status", middlewares.AuthMiddleware(), controllers.AuthStatus)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtrl.GetProfile)
		user.PUT("/profile", userCtrl.UpdateProfile)
		user.GET("/calorie-goal", userCtrl.GetCalorieGoal)
	}

	// Protected food log routes
	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", foodCtrl.SearchNutrition)
		food.POST("", foodCtrl.AddEntry)
		food.GET("", foodCtrl.ListEntries)
		food.GET("/date/:date", foodCtrl.EntriesByDate)
		food.PUT("/:id", foodCtrl.UpdateEntry)
		food.DELETE("/:id", foodCtrl.DeleteEntry)
	}

	// Protected report routes
	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware())
	{
		reports.GET("/daily/:date", reportCtrl.Daily)
		reports.GET("/weekly/:startDate", reportCtrl.Weekly)
		reports.GET("/monthly/:year/:month", reportCtrl.Monthly)
	}

	// Protected chat routes
	chat := r.Group("/chat")
	chat.Use(middlewares.AuthMiddleware())
	{
		chat.POST("", chatCtrl.Chat)
		chat.POST("/clear", chatCtrl.ClearChat)
	}

	// Realtime entry feed
	r.GET("/ws/updates", middlewares.AuthMiddleware(), rtCtrl.UpdatesWS)

	return r
}
