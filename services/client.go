package services

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kutsarap/bingo-rooms/utils/logger"
)

const sendBufferSize = 32

// Client is one websocket connection. roomCode is the room the
// connection is currently a member of, or empty; it is only touched
// from the connection's own read goroutine.
type Client struct {
	id       string
	roomCode string
	conn     *websocket.Conn
	hub      *Hub
	send     chan []byte
	once     sync.Once
}

func newClient(id string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		id:   id,
		conn: conn,
		hub:  hub,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

// enqueue drops the frame rather than blocking when the client cannot
// keep up.
func (c *Client) enqueue(b []byte) {
	if b == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf("[Client %s] send on closed connection", c.id)
		}
	}()

	select {
	case c.send <- b:
	default:
		logger.Warnf("[Client %s] dropping message, send buffer full", c.id)
	}
}

// --------------------
// Client read/write pumps
// --------------------
func (c *Client) readPump() {
	defer func() {
		c.hub.disconnect(c)
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Infof("[Client %s] disconnected normally", c.id)
			} else {
				logger.Infof("[Client %s] read error: %v", c.id, err)
			}
			return
		}
		c.hub.handle(c, message)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Infof("[Client %s] write error: %v", c.id, err)
			return
		}
	}
}
