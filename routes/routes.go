package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	controller "aurora/controllers"
	"aurora/middleware"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	// Auth routes group with logging middleware
	auth := app.Group("/api/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Public auth endpoints (no authentication required)
	auth.Post("/register", controller.Register)
	auth.Post("/login", middleware.LoginRateLimiter(), controller.Login)
	auth.Post("/refresh", controller.RefreshToken)

	// Protected auth endpoints (require valid JWT)
	protectedAuth := auth.Group("", middleware.Protected())
	protectedAuth.Post("/change-password", controller.ChangePassword)
	protectedAuth.Get("/me", controller.GetCurrentUser)
}

func SetupAPIRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize controllers with their respective loggers
	taskController := controller.NewTaskController(db, log.New(os.Stdout, "TASK: ", log.LstdFlags))
	teamController := controller.NewTeamController(db, log.New(os.Stdout, "TEAM: ", log.LstdFlags))
	masterController := controller.NewMasterController(db, log.New(os.Stdout, "MASTER: ", log.LstdFlags))

	// API group with protection
	api := app.Group("/api", middleware.Protected(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Task routes
	task := api.Group("/tasks")
	task.Get("/", taskController.GetTasks)
	task.Post("/", taskController.CreateTask)
	task.Put("/:id", taskController.UpdateTask)
	task.Delete("/:id", taskController.DeleteTask)

	// Team routes; only heads manage the roster
	team := api.Group("/team")
	team.Get("/", teamController.GetTeam)
	team.Post("/", middleware.RequireHead(), teamController.AddMember)
	team.Get("/activity/:teamId", teamController.GetTeamActivity)
	team.Delete("/:id", middleware.RequireHead(), teamController.RemoveMember)

	// Document routes (metadata only)
	document := api.Group("/documents")
	document.Get("/", controller.GetDocuments)
	document.Post("/", controller.UploadDocument)
	document.Delete("/:id", controller.DeleteDocument)

	// Password vault routes
	password := api.Group("/passwords")
	password.Get("/", controller.GetPasswords)
	password.Post("/", controller.CreatePassword)
	password.Put("/:id", controller.UpdatePassword)
	password.Delete("/:id", controller.DeletePassword)

	// Master oversight routes
	master := api.Group("/master", middleware.RequireMaster())
	master.Get("/admins", masterController.GetAdmins)
	master.Get("/team/:adminId", masterController.GetTeamDetails)

	// WebSocket route for the call lobby
	app.Get("/ws/call", websocket.New(func(c *websocket.Conn) {
		controller.HandleCallLobbyWS(c)
	}))

	log.Println("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	SetupAuthRoutes(app, db)

	// Setup API routes
	SetupAPIRoutes(app, db)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
