package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubPublishReachesCollectionSubscribers(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("employees")
	defer cleanup()

	other, otherCleanup := hub.Subscribe("advances")
	defer otherCleanup()

	hub.Publish("employees", Event{Collection: "employees", Event: "snapshot", Data: []string{"a"}})

	select {
	case ev := <-ch:
		assert.Equal(t, "employees", ev.Collection)
		assert.Equal(t, "snapshot", ev.Event)
	default:
		t.Fatal("expected event on employees channel")
	}

	select {
	case <-other:
		t.Fatal("advances subscriber received employees event")
	default:
	}
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("attendance")
	assert.Equal(t, 1, hub.SubscriberCount("attendance"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("attendance"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("payments")
	defer cleanup()

	// Channel buffer is 10; publishing more must not deadlock.
	for i := 0; i < 25; i++ {
		hub.Publish("payments", Event{Collection: "payments", Event: "snapshot"})
	}
}
