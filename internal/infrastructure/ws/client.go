package ws

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const sendBufferSize = 32

// Client is one live websocket connection. Topic membership is owned by the
// Core; the client only pumps frames in and out.
type Client struct {
	ID   string
	conn *connWrapper
	send chan ServerFrame
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.NewString(),
		conn: newConnWrapper(conn),
		send: make(chan ServerFrame, sendBufferSize),
	}
}

// ReadPump consumes subscribe/unsubscribe frames until the peer goes away,
// then unregisters the client so all its subscriptions drop.
func (c *Client) ReadPump(core *Core) {
	defer func() {
		core.Unregister() <- c
		_ = c.conn.Close()
	}()

	for {
		var frame ClientFrame
		if err := c.conn.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Event {
		case JoinRoomEvent:
			if frame.UserID != "" {
				core.Subscribe() <- subscription{client: c, topic: frame.UserID}
			}
		case LeaveRoomEvent:
			if frame.UserID != "" {
				core.Unsubscribe() <- subscription{client: c, topic: frame.UserID}
			}
		default:
			_ = c.conn.WriteJSON(NewErrorFrame("unknown event"))
		}
	}
}

// WritePump drains the send channel onto the wire. It exits when the Core
// closes the channel during unregistration.
func (c *Client) WritePump() {
	for frame := range c.send {
		if err := c.conn.WriteJSON(frame); err != nil {
			break
		}
	}
	_ = c.conn.Close()
}
