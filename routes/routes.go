package routes

import (
	"memorykeeper-backend/config"
	"memorykeeper-backend/controllers"
	"memorykeeper-backend/services"
	"memorykeeper-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(reminderService *services.ReminderService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		people := api.Group("/people")
		{
			people.POST("", controllers.CreatePerson)
			people.GET("", controllers.GetPeople)
			people.GET("/:id", controllers.GetPerson)
			people.PUT("/:id", controllers.UpdatePerson)
			people.DELETE("/:id", controllers.DeletePerson)
		}

		memories := api.Group("/memories")
		{
			memories.POST("", controllers.CreateMemory)
			memories.GET("", controllers.GetMemories)
			memories.GET("/:id", controllers.GetMemory)
			memories.PUT("/:id", controllers.UpdateMemory)
			memories.DELETE("/:id", controllers.DeleteMemory)
		}

		reminders := api.Group("/reminders")
		{
			reminders.POST("", controllers.CreateReminder)
			reminders.GET("", controllers.GetReminders)
			// Manual tick trigger, same path the cron job takes
			reminders.POST("/run-due", controllers.RunDueReminders(reminderService))
			reminders.GET("/:id", controllers.GetReminder)
			reminders.PUT("/:id", controllers.UpdateReminder)
			reminders.DELETE("/:id", controllers.DeleteReminder)
		}

		api.GET("/notifications", controllers.GetNotifications)

		profile := api.Group("/profile")
		{
			profile.PUT("/update-notifications", controllers.UpdateNotificationEmails)
		}
	}

	return r
}
