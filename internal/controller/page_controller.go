package controller

import (
	"lumera-client/internal/service"
	"lumera-client/internal/view"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type pageController struct {
	auth service.IAuthService
}

func NewPageController(auth service.IAuthService) IPageController {
	return &pageController{auth: auth}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Get("/healthz", c.Health)
}

func (c *pageController) Home(ctx *fiber.Ctx) error {
	return renderPage(ctx, "home", view.Page{
		LoggedIn: c.auth.Session().Authenticated(),
	})
}

func (c *pageController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "healthy", "message": "Lumera client is running"})
}
