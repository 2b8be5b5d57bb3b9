package handler

import (
	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/internal/service"
	internalWS "sahasrayogam-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/websocket/v2"
)

type ViewerHandler struct {
	viewers service.IViewerService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewViewerHandler(viewers service.IViewerService, hub *internalWS.Hub, log logger.ILogger) *ViewerHandler {
	return &ViewerHandler{
		viewers: viewers,
		hub:     hub,
		logger:  log,
	}
}

// ServeWs upgrades to the live viewer socket. The session comes from the
// page cookie, or the "session" query parameter for non-browser clients.
func (h *ViewerHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	sessionId := c.Query(constant.SessionQueryParam)
	if sessionId == "" {
		sessionId = c.Cookies(constant.SessionCookieName)
	}
	// Fiber reuses request buffers once the handler returns.
	sessionId = utils.CopyString(sessionId)

	return websocket.New(func(conn *websocket.Conn) {
		controller := h.viewers.Open(sessionId)
		h.logger.Info("ViewerHandler", "Starting WebSocket session", map[string]interface{}{"session_id": controller.Id()})
		internalWS.ServeWs(h.hub, conn, controller)
		h.logger.Info("ViewerHandler", "WebSocket session ended", map[string]interface{}{"session_id": controller.Id()})
	})(c)
}

func (h *ViewerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/viewer", h.ServeWs)
}
