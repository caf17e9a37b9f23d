package chathub

import (
	"encoding/json"
	"log"

	"pairgogo/backend/internal/models"
)

// relayEnvelope is the payload exchanged between hub instances over the
// shared Redis channel. Origin identifies the publishing instance so a hub
// never replays its own broadcasts.
type relayEnvelope struct {
	Origin  string       `json:"origin"`
	MatchID uint         `json:"match_id"`
	Event   models.Event `json:"event"`
}

// startRelay subscribes to the shared event channel and feeds remote
// broadcasts into the local dispatch queue. No-op without Redis.
func (h *Hub) startRelay() {
	if h.Storage == nil {
		return
	}
	sub := h.Storage.SubscribeEvents()
	if sub == nil {
		return
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var env relayEnvelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					log.Printf("ERROR: Failed to unmarshal relayed event: %v", err)
					continue
				}
				if env.Origin == h.instanceID {
					continue
				}
				select {
				case h.broadcastCh <- broadcast{matchID: env.MatchID, event: env.Event, remote: true}:
				case <-h.done:
					return
				}
			case <-h.done:
				return
			}
		}
	}()
}

// publishRelay pushes a locally originated broadcast to the shared channel
// for other instances. Run-loop only.
func (h *Hub) publishRelay(b broadcast) {
	if h.Storage == nil {
		return
	}
	payload, err := json.Marshal(relayEnvelope{
		Origin:  h.instanceID,
		MatchID: b.matchID,
		Event:   b.event,
	})
	if err != nil {
		log.Printf("ERROR: Failed to marshal relay envelope: %v", err)
		return
	}
	if err := h.Storage.PublishEvent(payload); err != nil {
		log.Printf("WARNING: Failed to publish event for match %d: %v", b.matchID, err)
	}
}
