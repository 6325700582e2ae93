package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) waitFor(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r.count() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", n, r.count())
}

func TestPublish_Filtering(t *testing.T) {
	b := NewEventBus()
	defer b.Stop()

	created := &recorder{}
	all := &recorder{}
	b.Subscribe(created.handle, EventContentCreated)
	b.Subscribe(all.handle)

	b.Publish(NewEvent(EventContentCreated, "test", nil))
	b.Publish(NewEvent(EventContentDeleted, "test", nil))

	assert.Equal(t, 1, created.count())
	assert.Equal(t, 2, all.count())
}

func TestPublishAsync_Delivers(t *testing.T) {
	b := NewEventBus()
	defer b.Stop()

	rec := &recorder{}
	b.Subscribe(rec.handle, EventAnalyticsRecorded)

	for i := 0; i < 10; i++ {
		b.PublishAsync(NewEvent(EventAnalyticsRecorded, "test", map[string]interface{}{"n": i}))
	}
	rec.waitFor(t, 10)
}

func TestUnsubscribe(t *testing.T) {
	b := NewEventBus()
	defer b.Stop()

	rec := &recorder{}
	id := b.Subscribe(rec.handle)

	b.Publish(NewEvent(EventContentCreated, "test", nil))
	b.Unsubscribe(id)
	b.Publish(NewEvent(EventContentCreated, "test", nil))

	assert.Equal(t, 1, rec.count())
}

func TestPublish_SurvivesPanickingHandler(t *testing.T) {
	b := NewEventBus()
	defer b.Stop()

	rec := &recorder{}
	b.Subscribe(func(Event) { panic("bad handler") }, EventContentCreated)
	b.Subscribe(rec.handle, EventContentCreated)

	require.NotPanics(t, func() {
		b.Publish(NewEvent(EventContentCreated, "test", nil))
	})
	assert.Equal(t, 1, rec.count())
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(EventContentCreated, "module:catalog", map[string]interface{}{"content_id": uint(1)})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventContentCreated, event.Type)
	assert.Equal(t, "module:catalog", event.Source)
	assert.NotZero(t, event.Timestamp)

	other := NewEvent(EventContentCreated, "module:catalog", nil)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestStop_Idempotent(t *testing.T) {
	b := NewEventBus()
	b.Stop()
	require.NotPanics(t, b.Stop)
}
