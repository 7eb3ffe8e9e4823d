package relay

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tdngo/gomarket-api/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The relay fronts browser clients from any storefront origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// ServeWS upgrades the request and attaches the connection to the hub.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logging.From(c).Error("websocket upgrade failed", "err", err)
			return
		}

		client := newClient(hub, conn, uuid.NewString())
		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}
