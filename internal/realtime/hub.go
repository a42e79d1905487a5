// Package realtime fans chat events out to the websocket clients of one
// hospital.
package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// subscriberBuffer is how many events a slow client may lag behind before
// events are dropped for it.
const subscriberBuffer = 16

// Event is pushed to every subscriber of the hospital it was published to.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const EventAttachmentLinked = "attachment.linked"

// Subscription receives the events of one hospital on C.
type Subscription struct {
	HospitalID uint
	UserID     uint
	C          chan Event
}

// Hub keeps the live subscriptions per hospital.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint]map[*Subscription]struct{}
	log  *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		subs: make(map[uint]map[*Subscription]struct{}),
		log:  log,
	}
}

// Subscribe registers a listener for hospitalID.
func (h *Hub) Subscribe(hospitalID, userID uint) *Subscription {
	sub := &Subscription{
		HospitalID: hospitalID,
		UserID:     userID,
		C:          make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[hospitalID] == nil {
		h.subs[hospitalID] = make(map[*Subscription]struct{})
	}
	h.subs[hospitalID][sub] = struct{}{}
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it twice is a no-op.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[sub.HospitalID]
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.HospitalID)
	}
	close(sub.C)
}

// Publish delivers event to the subscribers of hospitalID without blocking.
func (h *Hub) Publish(hospitalID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[hospitalID] {
		select {
		case sub.C <- event:
		default:
			h.log.Warn("dropping realtime event for slow subscriber",
				zap.String("type", event.Type),
				zap.Uint("hospital_id", hospitalID),
				zap.Uint("user_id", sub.UserID),
			)
		}
	}
}

// Subscribers returns the number of live subscriptions of hospitalID.
func (h *Hub) Subscribers(hospitalID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[hospitalID])
}
