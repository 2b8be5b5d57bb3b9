package controller

import (
	"errors"
	"strconv"

	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/pkg/serverutils"
	"sahasrayogam-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFormulationController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Fields(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type formulationController struct {
	service service.IFormulationService
}

func NewFormulationController(service service.IFormulationService) IFormulationController {
	return &formulationController{service: service}
}

func (c *formulationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/formulation/v1")
	h.Get("categories", c.Categories)
	h.Get("fields", c.Fields)
	h.Get("status", c.Status)
	h.Get("", c.Search)
	h.Get(":id", c.Show)
}

func (c *formulationController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid query", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			return serverutils.NewBadRequest("invalid category", err)
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search formulations", res))
}

func (c *formulationController) Show(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return serverutils.NewBadRequest("invalid formulation id", err)
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrFormulationNotFound) {
			return serverutils.NewNotFound("Formulation not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show formulation", res))
}

func (c *formulationController) Categories(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get categories", c.service.Categories(ctx.UserContext())))
}

func (c *formulationController) Fields(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get field scopes", c.service.Fields(ctx.UserContext())))
}

func (c *formulationController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get status", c.service.Status(ctx.UserContext())))
}
