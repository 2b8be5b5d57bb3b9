package websocket

import (
	"sahasrayogam-be/internal/viewer"

	"github.com/gofiber/websocket/v2"
)

// ServeWs registers the connection, pushes the first view, then runs the
// pumps until the peer goes away.
func ServeWs(hub *Hub, conn *websocket.Conn, controller *viewer.Controller) {
	client := NewClient(hub, conn, controller)
	if !hub.Register(client) {
		return
	}
	hub.SendView(client)

	go client.writePump()
	client.readPump()
}
