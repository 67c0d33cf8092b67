package domain

import (
	"context"
	"fmt"
)

// Message is a single chat entry. Messages are immutable once appended; file
// attachments carry the stored filename and the public path it is served from.
type Message struct {
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Filename  string `json:"filename,omitempty"`
	FilePath  string `json:"filePath,omitempty"`
}

// NewFileMessage builds the synthetic log entry recorded for an upload.
func NewFileMessage(storedName, originalName, filePath string, timestamp int64) Message {
	return Message{
		Text:      fmt.Sprintf("File uploaded: %s", storedName),
		Timestamp: timestamp,
		Filename:  originalName,
		FilePath:  filePath,
	}
}

// RoomLog is the ordered message history of one room, keyed by the owning
// user. Insertion order is delivery order.
type RoomLog struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Messages []Message `json:"messages"`
}

type MessageRepository interface {
	// Append adds the message to the user's log and returns the updated log.
	Append(ctx context.Context, userID string, message Message) (*RoomLog, error)
	Log(ctx context.Context, userID string) (*RoomLog, error)
}
