package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/linskybing/lovecontract/internal/domain/contract"
	"github.com/linskybing/lovecontract/internal/metrics"
	"github.com/rs/zerolog"
)

const defaultBuffer = 16

// Subscriber receives the encoded events of one contract. Its channel is closed when
// it is unsubscribed, dropped for falling behind, or the hub shuts down.
type Subscriber struct {
	contractID uuid.UUID
	send       chan []byte
}

func (s *Subscriber) C() <-chan []byte {
	return s.send
}

// Hub fans contract events out to websocket watchers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]map[*Subscriber]struct{}
	buffer int
	closed bool
	log    zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs:   make(map[uuid.UUID]map[*Subscriber]struct{}),
		buffer: defaultBuffer,
		log:    log.With().Str("module", "realtime").Logger(),
	}
}

// WithBuffer sets the per-subscriber queue length for subscribers created afterwards.
func (h *Hub) WithBuffer(n int) *Hub {
	if n > 0 {
		h.buffer = n
	}
	return h
}

// Subscribe returns nil once the hub is closed.
func (h *Hub) Subscribe(contractID uuid.UUID) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}

	s := &Subscriber{contractID: contractID, send: make(chan []byte, h.buffer)}
	set, ok := h.subs[contractID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		h.subs[contractID] = set
	}
	set[s] = struct{}{}
	metrics.WatchersActive.Inc()
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	if s == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(s)
}

// remove must be called with h.mu held.
func (h *Hub) remove(s *Subscriber) {
	set, ok := h.subs[s.contractID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.subs, s.contractID)
	}
	close(s.send)
	metrics.WatchersActive.Dec()
}

// Publish implements application.Notifier. It never blocks: a subscriber whose queue
// is full is dropped.
func (h *Hub) Publish(contractID uuid.UUID, ev contract.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.Error().Err(err).Str("contract_id", contractID.String()).Msg("encode event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[contractID] {
		select {
		case s.send <- data:
		default:
			h.log.Warn().Str("contract_id", contractID.String()).Msg("dropping slow watcher")
			h.remove(s)
		}
	}
}

// Watchers reports how many subscribers a contract has.
func (h *Hub) Watchers(contractID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[contractID])
}

// Close disconnects every subscriber. Later subscriptions are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for _, set := range h.subs {
		for s := range set {
			h.remove(s)
		}
	}
}
