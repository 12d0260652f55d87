package controller

import (
	"lumera-client/internal/dto"
	"lumera-client/internal/service"
	"lumera-client/internal/view"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Page(ctx *fiber.Ctx) error
	Message(ctx *fiber.Ctx) error
	MessageJSON(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Get("/chatbot", c.Page)
	r.Post("/chatbot", c.Message)
	r.Post("/chatbot/message", c.MessageJSON)
}

func (c *chatbotController) Page(ctx *fiber.Ctx) error {
	return renderPage(ctx, "chatbot", view.Page{
		LoggedIn: true,
		Data: fiber.Map{
			"Greeting":       c.service.Greeting().Text,
			"QuickQuestions": c.service.QuickQuestions(),
			"Reply":          "",
		},
	})
}

func (c *chatbotController) Message(ctx *fiber.Ctx) error {
	req := &dto.ChatMessageRequest{Message: ctx.FormValue("message")}
	res := c.service.Reply(req)
	return renderPage(ctx, "chatbot", view.Page{
		LoggedIn: true,
		Data: fiber.Map{
			"Greeting":       c.service.Greeting().Text,
			"QuickQuestions": c.service.QuickQuestions(),
			"Reply":          res.Reply,
		},
	})
}

// MessageJSON is the same exchange for script consumers.
func (c *chatbotController) MessageJSON(ctx *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid request body",
		})
	}
	return ctx.JSON(c.service.Reply(&req))
}
