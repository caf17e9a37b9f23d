package models

import "encoding/json"

// Event types carried over the chat WebSocket.
const (
	// EventTypeMessage wraps a durably persisted Message.
	EventTypeMessage = "message"
	// EventTypeClientEvent wraps an opaque transient signal relayed between
	// connected clients (e.g. typing indicators). Never persisted.
	EventTypeClientEvent = "client-event"
)

// Event is the JSON envelope for everything pushed over a chat connection.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NewMessageEvent wraps a persisted message into its wire envelope.
func NewMessageEvent(msg *Message) Event {
	data, _ := json.Marshal(msg)
	return Event{Type: EventTypeMessage, Data: data}
}

// NewClientEvent wraps a raw client frame for verbatim relay.
func NewClientEvent(raw []byte) Event {
	return Event{Type: EventTypeClientEvent, Data: raw}
}
