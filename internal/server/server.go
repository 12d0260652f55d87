package server

import (
	"log"

	"lumera-client/internal/bootstrap"
	"lumera-client/internal/config"

	"github.com/gofiber/fiber/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		// Above the 16 MiB ceiling on purpose: oversized files must reach
		// the workflow so it can reject them with FileTooLarge itself
		BodyLimit: 32 * 1024 * 1024,
	})

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Lumera client is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	// Public views
	c.PageController.RegisterRoutes(app)
	c.AuthController.RegisterRoutes(app)

	// Every authenticated view sits behind the guard; it re-evaluates on
	// each navigation, so login state changes are picked up immediately
	protected := app.Group("", c.GuardService.Middleware())
	c.AnalysisController.RegisterRoutes(protected)
	c.ChatbotController.RegisterRoutes(protected)
}
