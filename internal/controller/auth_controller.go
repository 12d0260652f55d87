package controller

import (
	"lumera-client/internal/dto"
	"lumera-client/internal/service"
	"lumera-client/internal/view"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	LoginPage(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	SignupPage(ctx *fiber.Ctx) error
	Signup(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/login", c.LoginPage)
	r.Post("/login", c.Login)
	r.Get("/signup", c.SignupPage)
	r.Post("/signup", c.Signup)
	r.Post("/logout", c.Logout)
}

func (c *authController) LoginPage(ctx *fiber.Ctx) error {
	return renderPage(ctx, "login", view.Page{
		LoggedIn: c.service.Session().Authenticated(),
		Data:     fiber.Map{"From": ctx.Query("from")},
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	req := &dto.LoginRequest{
		Email:    ctx.FormValue("email"),
		Password: ctx.FormValue("password"),
	}

	if _, err := c.service.Login(ctx.Context(), req); err != nil {
		return renderPage(ctx, "login", view.Page{
			Error: err.Error(),
			Data:  fiber.Map{"From": ctx.FormValue("from")},
		})
	}

	// Return the user to wherever the guard bounced them from
	to := ctx.FormValue("from")
	if to == "" {
		to = "/dashboard"
	}
	return ctx.Redirect(to, fiber.StatusFound)
}

func (c *authController) SignupPage(ctx *fiber.Ctx) error {
	return renderPage(ctx, "signup", view.Page{
		LoggedIn: c.service.Session().Authenticated(),
		Data:     fiber.Map{},
	})
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	req := &dto.SignupRequest{
		Username: ctx.FormValue("username"),
		Email:    ctx.FormValue("email"),
		Password: ctx.FormValue("password"),
	}

	if _, err := c.service.Signup(ctx.Context(), req); err != nil {
		return renderPage(ctx, "signup", view.Page{
			Error: err.Error(),
			Data:  fiber.Map{},
		})
	}
	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	_ = c.service.Logout()
	return ctx.Redirect("/", fiber.StatusFound)
}

// renderPage is the shared HTML response helper for all controllers.
func renderPage(ctx *fiber.Ctx, name string, page view.Page) error {
	html, err := view.Render(name, page)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(html)
}
