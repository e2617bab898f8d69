package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove         MessageType = "move"
	MessageTypePromote      MessageType = "promote"
	MessageTypeUndo         MessageType = "undo"
	MessageTypeSelect       MessageType = "select"
	MessageTypeGameState    MessageType = "gameState"
	MessageTypeDestinations MessageType = "destinations"
	MessageTypeError        MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorPayload is the body of a MessageTypeError message.
type ErrorPayload struct {
	Error string `json:"error"`
}
