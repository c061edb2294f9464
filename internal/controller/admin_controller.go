// FILE: internal/controller/admin_controller.go
package controller

import (
	"jugaad-deals-be/internal/dto"
	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/internal/pkg/serverutils"
	"jugaad-deals-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultLogLimit = 50

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	stats     service.IStatsService
	logReader logger.LogReader
	jwtSecret string
}

func NewAdminController(stats service.IStatsService, logReader logger.LogReader, jwtSecret string) IAdminController {
	return &adminController{
		stats:     stats,
		logReader: logReader,
		jwtSecret: jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")

	// Protected Routes
	h.Use(serverutils.AdminOnly(c.jwtSecret))

	h.Get("/stats", c.GetStats)
	h.Get("/logs", c.GetLogs)
}

func (c *adminController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.stats.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var req dto.LogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid query parameters"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}
	if req.Limit == 0 {
		req.Limit = defaultLogLimit
	}

	logs, err := c.logReader.GetLogs(req.Level, req.Limit, req.Offset)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.LogListResponse{
		Logs:   logs,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}
