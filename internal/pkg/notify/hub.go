package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event represents a dashboard notification pushed over WebSocket.
type Event struct {
	// Type of event: currently only "application.created"
	Type string `json:"type"`

	// Recruiter this event is addressed to
	RecruiterID int64 `json:"recruiterId"`

	// Job the event relates to
	JobID    int64  `json:"jobId"`
	JobTitle string `json:"jobTitle"`

	// Application details for application events
	ApplicationID int64  `json:"applicationId,omitempty"`
	CandidateName string `json:"candidateName,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// EventApplicationCreated is sent when a candidate applies to one of the
// recruiter's jobs.
const EventApplicationCreated = "application.created"

// Hub maintains the set of active dashboard clients per recruiter and
// delivers events to them. Delivery is best-effort: a slow or absent
// client never blocks the publisher.
type Hub struct {
	clients map[int64]map[*Client]bool

	publish    chan *Event
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		publish:    make(chan *Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[int64]map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub loop, handling client registrations and event delivery.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.publish:
			h.deliver(event)
		}
	}
}

// Publish queues an event for delivery. It never blocks; if the hub's
// queue is full the event is dropped and logged.
func (h *Hub) Publish(event *Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case h.publish <- event:
	default:
		h.logger.Warn().
			Str("type", event.Type).
			Int64("recruiterID", event.RecruiterID).
			Msg("Notification queue full, dropping event")
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.recruiterID]; !ok {
		h.clients[client.recruiterID] = make(map[*Client]bool)
	}
	h.clients[client.recruiterID][client] = true

	h.logger.Debug().
		Int64("recruiterID", client.recruiterID).
		Int("connections", len(h.clients[client.recruiterID])).
		Msg("Dashboard client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.recruiterID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
			if len(clients) == 0 {
				delete(h.clients, client.recruiterID)
			}
		}
	}
}

func (h *Hub) deliver(event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[event.RecruiterID] {
		select {
		case client.send <- payload:
		default:
			// Client buffer full; drop the event for this client
			h.logger.Debug().
				Int64("recruiterID", event.RecruiterID).
				Msg("Client send buffer full, dropping event")
		}
	}
}

// ConnectionCount returns the number of open connections for a recruiter.
func (h *Hub) ConnectionCount(recruiterID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[recruiterID])
}
