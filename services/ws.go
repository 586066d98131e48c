package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/kutsarap/bingo-rooms/utils/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict this in production to the configured origins
		return true
	},
}

// HandleWebSocket upgrades the connection and starts its pumps. All
// game interaction happens over the resulting event stream.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("[WS] upgrade error: %v", err)
		return
	}

	client := newClient(uuid.NewString(), conn, h)
	h.register(client)

	go client.writePump()
	go client.readPump()
}
