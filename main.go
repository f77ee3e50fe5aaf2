package main

import (
	"log"

	"voxquiz/config"
	"voxquiz/database"
	authRoutes "voxquiz/routers/authRoutes"
	contentRoutes "voxquiz/routers/contentRoutes"
	quizRoutes "voxquiz/routers/quizRoutes"
	studentRoutes "voxquiz/routers/studentRoutes"
	teacherRoutes "voxquiz/routers/teacherRoutes"
	"voxquiz/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app)

	utils.InitializeStreakScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
