package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestClient(hub *Hub, recruiterID int64, buffer int) *Client {
	return &Client{
		hub:         hub,
		send:        make(chan []byte, buffer),
		recruiterID: recruiterID,
		logger:      zerolog.Nop(),
	}
}

func TestHubDeliversToRecruiterClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	client := newTestClient(hub, 7, 8)
	other := newTestClient(hub, 9, 8)

	hub.registerClient(client)
	hub.registerClient(other)

	hub.deliver(&Event{
		Type:          EventApplicationCreated,
		RecruiterID:   7,
		JobID:         3,
		JobTitle:      "Backend Engineer",
		ApplicationID: 11,
		CandidateName: "Jane Banda",
		Timestamp:     time.Now(),
	})

	select {
	case payload := <-client.send:
		var got Event
		if err := json.Unmarshal(payload, &got); err != nil {
			t.Fatalf("unmarshal delivered event: %v", err)
		}
		if got.Type != EventApplicationCreated {
			t.Errorf("Type = %q, want %q", got.Type, EventApplicationCreated)
		}
		if got.ApplicationID != 11 || got.JobID != 3 {
			t.Errorf("unexpected event ids: %+v", got)
		}
	default:
		t.Fatal("expected an event for the addressed recruiter")
	}

	select {
	case <-other.send:
		t.Fatal("event leaked to a different recruiter")
	default:
	}
}

func TestHubDropsEventWhenClientBufferFull(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	client := newTestClient(hub, 7, 1)
	hub.registerClient(client)

	event := &Event{Type: EventApplicationCreated, RecruiterID: 7, Timestamp: time.Now()}
	hub.deliver(event)
	hub.deliver(event) // buffer full, must not block

	if got := len(client.send); got != 1 {
		t.Fatalf("buffered events = %d, want 1", got)
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	client := newTestClient(hub, 7, 1)

	hub.registerClient(client)
	if got := hub.ConnectionCount(7); got != 1 {
		t.Fatalf("ConnectionCount = %d, want 1", got)
	}

	hub.unregisterClient(client)
	if got := hub.ConnectionCount(7); got != 0 {
		t.Fatalf("ConnectionCount after unregister = %d, want 0", got)
	}

	if _, open := <-client.send; open {
		t.Fatal("expected send channel to be closed")
	}

	// Unregistering twice must be safe
	hub.unregisterClient(client)
}

func TestPublishSetsTimestampAndNeverBlocks(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	event := &Event{Type: EventApplicationCreated, RecruiterID: 1}
	hub.Publish(event)
	if event.Timestamp.IsZero() {
		t.Error("expected Publish to stamp the event")
	}

	// Fill the queue past capacity; overflow is dropped, not blocked on
	for i := 0; i < 200; i++ {
		hub.Publish(&Event{Type: EventApplicationCreated, RecruiterID: 1})
	}
}
