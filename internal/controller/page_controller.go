package controller

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"time"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/pkg/serverutils"
	"sahasrayogam-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/viewer.html
var templates embed.FS

var viewerPage = template.Must(template.ParseFS(templates, "templates/viewer.html"))

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

type pageController struct {
	viewers    service.IViewerService
	sessionTTL time.Duration
}

func NewPageController(viewers service.IViewerService, sessionTTL time.Duration) IPageController {
	return &pageController{viewers: viewers, sessionTTL: sessionTTL}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
}

// Index renders the viewer of the caller's session. The category, field and
// q query parameters are applied as transitions before rendering.
func (c *pageController) Index(ctx *fiber.Ctx) error {
	controller := c.viewers.Open(ctx.Cookies(constant.SessionCookieName))

	args := ctx.Request().URI().QueryArgs()
	commands := []dto.ViewerCommand{}
	if args.Has("category") {
		commands = append(commands, dto.ViewerCommand{Type: service.CommandSetCategory, Value: ctx.Query("category")})
	}
	if args.Has("field") {
		commands = append(commands, dto.ViewerCommand{Type: service.CommandSetField, Value: ctx.Query("field")})
	}
	if args.Has("q") {
		commands = append(commands, dto.ViewerCommand{Type: service.CommandSetQuery, Value: ctx.Query("q")})
	}
	for i := range commands {
		if err := c.viewers.Apply(controller, &commands[i]); err != nil {
			if errors.Is(err, service.ErrUnknownCategory) {
				return serverutils.NewBadRequest("invalid category", err)
			}
			return err
		}
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    controller.Id(),
		Path:     "/",
		Expires:  time.Now().Add(c.sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	var buf bytes.Buffer
	if err := viewerPage.Execute(&buf, controller.View()); err != nil {
		return err
	}
	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}
