package ws

import "github.com/roomkit/roomkit/internal/domain"

// Wire events. Clients send joinRoom/leaveRoom; the server pushes message.
const (
	JoinRoomEvent  = "joinRoom"
	LeaveRoomEvent = "leaveRoom"
	MessageEvent   = "message"
	ErrorEvent     = "error"
)

// ClientFrame is what a subscriber sends over the socket.
type ClientFrame struct {
	Event  string `json:"event"`
	UserID string `json:"userId"`
}

// ServerFrame is what the server pushes to subscribers.
type ServerFrame struct {
	Event   string          `json:"event"`
	UserID  string          `json:"userId,omitempty"`
	Payload *domain.Message `json:"payload,omitempty"`
	Message string          `json:"message,omitempty"`
}

func NewMessageFrame(userID string, msg domain.Message) ServerFrame {
	return ServerFrame{
		Event:   MessageEvent,
		UserID:  userID,
		Payload: &msg,
	}
}

func NewErrorFrame(text string) ServerFrame {
	return ServerFrame{
		Event:   ErrorEvent,
		Message: text,
	}
}
