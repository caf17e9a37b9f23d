package chathub_test

import (
	"sync"

	"pairgogo/backend/internal/models"
)

// fakeClient is an in-memory Client for hub tests. Events delivered by the
// hub land in recv; a zero-capacity recv simulates a stalled connection.
type fakeClient struct {
	connID  string
	userID  string
	matchID uint
	recv    chan models.Event

	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeClient(connID, userID string, matchID uint, buffer int) *fakeClient {
	return &fakeClient{
		connID:  connID,
		userID:  userID,
		matchID: matchID,
		recv:    make(chan models.Event, buffer),
		closed:  make(chan struct{}),
	}
}

func (c *fakeClient) GetConnID() string { return c.connID }

func (c *fakeClient) GetUserID() string { return c.userID }

func (c *fakeClient) GetMatchID() uint { return c.matchID }

func (c *fakeClient) GetSendChannel() chan<- models.Event { return c.recv }

func (c *fakeClient) Run() {}

func (c *fakeClient) Close() { c.closeOnce.Do(func() { close(c.closed) }) }

func (c *fakeClient) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}
