package chathub_test

import (
	"encoding/json"
	"testing"
	"time"

	"pairgogo/backend/internal/chathub"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func waitEvent(t *testing.T, c *fakeClient) models.Event {
	t.Helper()
	select {
	case ev := <-c.recv:
		return ev
	case <-time.After(time.Second):
		t.Fatalf("client %s: timed out waiting for event", c.connID)
		return models.Event{}
	}
}

func assertNoEvent(t *testing.T, c *fakeClient) {
	t.Helper()
	select {
	case ev := <-c.recv:
		t.Fatalf("client %s: unexpected %s event", c.connID, ev.Type)
	default:
	}
}

func textEvent(s string) models.Event {
	return models.NewClientEvent(json.RawMessage(`{"text":"` + s + `"}`))
}

func TestHubBroadcastReachesOnlyTargetMatch(t *testing.T) {
	hub := chathub.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	c1 := newFakeClient("c1", "1", 10, 8)
	c2 := newFakeClient("c2", "2", 10, 8)
	other := newFakeClient("c3", "3", 20, 8)

	hub.RegisterCh <- c1
	hub.RegisterCh <- c2
	hub.RegisterCh <- other

	hub.BroadcastToMatch(10, textEvent("hi"))

	ev1 := waitEvent(t, c1)
	ev2 := waitEvent(t, c2)
	assert.Equal(t, models.EventTypeClientEvent, ev1.Type)
	assert.Equal(t, ev1, ev2)
	assertNoEvent(t, other)
}

func TestHubBroadcastToEmptyMatch(t *testing.T) {
	hub := chathub.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	c := newFakeClient("c1", "1", 10, 8)
	hub.RegisterCh <- c

	// No registered connections for match 99: the event vanishes quietly.
	hub.BroadcastToMatch(99, textEvent("void"))
	hub.BroadcastToMatch(10, textEvent("after"))

	ev := waitEvent(t, c)
	assertNoEvent(t, c)
	assert.Equal(t, models.EventTypeClientEvent, ev.Type)
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := chathub.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	gone := newFakeClient("gone", "1", 10, 8)
	stays := newFakeClient("stays", "2", 10, 8)
	hub.RegisterCh <- gone
	hub.RegisterCh <- stays

	hub.UnregisterCh <- gone

	hub.BroadcastToMatch(10, textEvent("who's left"))

	waitEvent(t, stays)
	assertNoEvent(t, gone)
	assert.True(t, gone.isClosed())
	assert.False(t, stays.isClosed())
}

func TestHubDropsStalledClient(t *testing.T) {
	hub := chathub.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	// Zero buffer and nobody reading: the first delivery attempt fails.
	stalled := newFakeClient("stalled", "1", 10, 0)
	healthy := newFakeClient("healthy", "2", 10, 8)
	hub.RegisterCh <- stalled
	hub.RegisterCh <- healthy

	hub.BroadcastToMatch(10, textEvent("one"))
	hub.BroadcastToMatch(10, textEvent("two"))

	waitEvent(t, healthy)
	waitEvent(t, healthy)

	assert.True(t, stalled.isClosed(), "a client that cannot keep up must be dropped")
	assert.False(t, healthy.isClosed())
}

func TestHubUnregisterAfterDropIsIdempotent(t *testing.T) {
	hub := chathub.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	stalled := newFakeClient("stalled", "1", 10, 0)
	hub.RegisterCh <- stalled

	hub.BroadcastToMatch(10, textEvent("drop me"))

	// Simulates the read pump noticing the closed connection after the hub
	// already dropped the client. Must not close twice or panic.
	hub.UnregisterCh <- stalled

	hub.BroadcastToMatch(10, textEvent("anyone?"))
	assertNoEvent(t, stalled)
}

func TestHubStopClosesClients(t *testing.T) {
	hub := chathub.NewHub(nil)
	go hub.Run()

	c1 := newFakeClient("c1", "1", 10, 8)
	c2 := newFakeClient("c2", "2", 20, 8)
	hub.RegisterCh <- c1
	hub.RegisterCh <- c2

	hub.Stop()

	assert.Eventually(t, func() bool {
		return c1.isClosed() && c2.isClosed()
	}, time.Second, 10*time.Millisecond)
}

func TestHubPresenceTracking(t *testing.T) {
	removed := make(chan struct{}, 1)

	storageMock := new(mocks.Storage)
	storageMock.On("SubscribeEvents").Return(nil)
	storageMock.On("AddOnlineUser", "7").Return(nil)
	storageMock.On("AddOnlineUser", "barrier").Return(nil)
	storageMock.On("RemoveOnlineUser", "7").Run(func(mock.Arguments) {
		removed <- struct{}{}
	}).Return(nil)

	hub := chathub.NewHub(storageMock)
	go hub.Run()
	defer hub.Stop()

	first := newFakeClient("a", "7", 10, 8)
	second := newFakeClient("b", "7", 11, 8)
	hub.RegisterCh <- first
	hub.RegisterCh <- second

	hub.UnregisterCh <- first

	// The hub receives from its channels one operation at a time, so once
	// this register is accepted the unregister above has fully run.
	hub.RegisterCh <- newFakeClient("c", "barrier", 99, 8)

	// The user still has a live connection on match 11, so they must stay
	// in the online set.
	storageMock.AssertNotCalled(t, "RemoveOnlineUser", "7")

	hub.UnregisterCh <- second

	select {
	case <-removed:
	case <-time.After(time.Second):
		t.Fatal("user was not removed from the online set")
	}
	storageMock.AssertCalled(t, "AddOnlineUser", "7")
}

func TestHubPublishesLocalBroadcasts(t *testing.T) {
	storageMock := new(mocks.Storage)
	storageMock.On("SubscribeEvents").Return(nil)
	storageMock.On("AddOnlineUser", "1").Return(nil)

	published := make(chan []byte, 1)
	storageMock.On("PublishEvent", mock.AnythingOfType("[]uint8")).Run(func(args mock.Arguments) {
		select {
		case published <- args.Get(0).([]byte):
		default:
		}
	}).Return(nil)

	hub := chathub.NewHub(storageMock)
	go hub.Run()
	defer hub.Stop()

	c := newFakeClient("c1", "1", 10, 8)
	hub.RegisterCh <- c

	hub.BroadcastToMatch(10, textEvent("fan out"))
	waitEvent(t, c)

	select {
	case payload := <-published:
		var env struct {
			Origin  string       `json:"origin"`
			MatchID uint         `json:"match_id"`
			Event   models.Event `json:"event"`
		}
		assert.NoError(t, json.Unmarshal(payload, &env))
		assert.NotEmpty(t, env.Origin)
		assert.Equal(t, uint(10), env.MatchID)
		assert.Equal(t, models.EventTypeClientEvent, env.Event.Type)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for relay publish")
	}
}
