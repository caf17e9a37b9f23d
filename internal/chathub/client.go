package chathub

import "pairgogo/backend/internal/models"

// Client is the interface for one live chat connection. It abstracts the
// underlying transport so the hub can manage connection types uniformly.
type Client interface {
	// GetConnID returns the unique identifier of this connection.
	GetConnID() string
	// GetUserID returns the user behind the connection, or "" when the
	// client connected anonymously.
	GetUserID() string
	// GetMatchID returns the match whose channel this client subscribed to.
	GetMatchID() uint

	// GetSendChannel returns the channel the hub pushes outbound events
	// into. It is a send-only channel.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's outbound channel, stopping its writer.
	Close()
}
