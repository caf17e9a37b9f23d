package chathub

import (
	"log"

	"pairgogo/backend/internal/metrics"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"

	"github.com/google/uuid"
)

// broadcast is one fan-out request queued for the Run loop.
type broadcast struct {
	matchID uint
	event   models.Event
	// remote marks events replayed from the Redis relay; they must not be
	// republished or they would loop between instances.
	remote bool
}

// Hub owns the per-match registry of live chat connections. All structural
// mutation and iteration happens on the single Run goroutine, so register,
// unregister and broadcast can be invoked concurrently from any handler.
type Hub struct {
	// Channels maps a match id to its set of live clients, keyed by conn id.
	// Only the Run goroutine touches it.
	Channels map[uint]map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client

	broadcastCh chan broadcast
	done        chan struct{}

	// Storage is optional; when present it backs the online-presence set
	// and the cross-instance event relay.
	Storage storage.Storage

	instanceID string
}

// NewHub creates a hub. Pass a nil storage to run purely in-memory.
func NewHub(s storage.Storage) *Hub {
	return &Hub{
		Channels:     make(map[uint]map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		broadcastCh:  make(chan broadcast, 256),
		done:         make(chan struct{}),
		Storage:      s,
		instanceID:   uuid.New().String(),
	}
}

// Run is the hub dispatcher. Start it once with `go hub.Run()`.
func (h *Hub) Run() {
	h.startRelay()

	for {
		select {
		case c := <-h.RegisterCh:
			h.register(c)
		case c := <-h.UnregisterCh:
			h.unregister(c)
		case b := <-h.broadcastCh:
			h.deliver(b)
		case <-h.done:
			for _, conns := range h.Channels {
				for _, c := range conns {
					c.Close()
				}
			}
			h.Channels = make(map[uint]map[string]Client)
			return
		}
	}
}

// Stop tears the hub down, closing every registered client. There is no
// reconnection recovery; catch-up happens through the message history.
func (h *Hub) Stop() {
	close(h.done)
}

// BroadcastToMatch queues an event for every connection currently
// registered under the match. Fire and forget: a full hub queue drops the
// event rather than blocking the caller.
func (h *Hub) BroadcastToMatch(matchID uint, event models.Event) {
	select {
	case h.broadcastCh <- broadcast{matchID: matchID, event: event}:
	case <-h.done:
	default:
		log.Printf("WARNING: Hub queue full, dropping %s event for match %d", event.Type, matchID)
	}
}

func (h *Hub) register(c Client) {
	conns := h.Channels[c.GetMatchID()]
	if conns == nil {
		conns = make(map[string]Client)
		h.Channels[c.GetMatchID()] = conns
	}
	conns[c.GetConnID()] = c
	metrics.ConnectionsActive.Inc()

	if h.Storage != nil && c.GetUserID() != "" {
		if err := h.Storage.AddOnlineUser(c.GetUserID()); err != nil {
			log.Printf("WARNING: Failed to mark user %s online: %v", c.GetUserID(), err)
		}
	}
	log.Printf("Client %s registered on match %d", c.GetConnID(), c.GetMatchID())
}

func (h *Hub) unregister(c Client) {
	conns := h.Channels[c.GetMatchID()]
	if _, ok := conns[c.GetConnID()]; !ok {
		return // already removed by a failed delivery
	}
	h.drop(c)
	log.Printf("Client %s unregistered from match %d", c.GetConnID(), c.GetMatchID())
}

// drop removes a client from the registry and closes it. Run-loop only.
func (h *Hub) drop(c Client) {
	delete(h.Channels[c.GetMatchID()], c.GetConnID())
	c.Close()
	metrics.ConnectionsActive.Dec()

	if h.Storage != nil && c.GetUserID() != "" && !h.userStillConnected(c.GetUserID()) {
		if err := h.Storage.RemoveOnlineUser(c.GetUserID()); err != nil {
			log.Printf("WARNING: Failed to mark user %s offline: %v", c.GetUserID(), err)
		}
	}
}

func (h *Hub) userStillConnected(userID string) bool {
	for _, conns := range h.Channels {
		for _, c := range conns {
			if c.GetUserID() == userID {
				return true
			}
		}
	}
	return false
}

// deliver fans one event out to the match's channel. A client whose send
// buffer is full is treated as disconnected: it is dropped so the remaining
// clients still get the event.
func (h *Hub) deliver(b broadcast) {
	for _, c := range h.Channels[b.matchID] {
		select {
		case c.GetSendChannel() <- b.event:
			metrics.BroadcastsTotal.WithLabelValues("delivered").Inc()
		default:
			metrics.BroadcastsTotal.WithLabelValues("dropped").Inc()
			log.Printf("Client %s too slow, dropping from match %d", c.GetConnID(), b.matchID)
			h.drop(c)
		}
	}

	if !b.remote {
		h.publishRelay(b)
	}
}
