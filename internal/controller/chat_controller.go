// FILE: internal/controller/chat_controller.go
package controller

import (
	"errors"

	"jugaad-deals-be/internal/dto"
	"jugaad-deals-be/internal/pkg/serverutils"
	"jugaad-deals-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Greeting(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/greeting", c.Greeting)
	r.Get("/health", c.Health)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	// Every malformed request gets the same body.
	if err := ctx.BodyParser(&req); err != nil {
		return badChatRequest(ctx)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return badChatRequest(ctx)
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return badChatRequest(ctx)
		}
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) Greeting(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Greeting(ctx.Context()))
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Status: "ok"})
}

func badChatRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(serverutils.MessageNoMessage))
}
