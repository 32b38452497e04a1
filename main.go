package main

import (
	"fmt"
	"log"
	"os"

	"memorykeeper-backend/config"
	"memorykeeper-backend/models"
	"memorykeeper-backend/routes"
	"memorykeeper-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Memory{},
		&models.Reminder{},
		&models.NotificationLog{},
	)
}

func main() {
	reminderService := services.NewReminderService(config.DB)
	reminderService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(reminderService)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
