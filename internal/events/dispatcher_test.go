package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderEvent(orderID int64) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       EventOrderCreated,
		OrderID:    orderID,
		CustomerID: 1,
		Timestamp:  time.Now(),
		Payload:    OrderCreatedPayload{TotalPrice: 1500, ItemCount: 2},
	}
}

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventOrderCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), orderEvent(42)))
	require.Len(t, got, 1)
	assert.Equal(t, int64(42), got[0].OrderID)
	assert.Equal(t, EventOrderCreated, got[0].Type)
}

func TestDispatcher_TypeIsolation(t *testing.T) {
	d := NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(EventAccountSignedUp, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), orderEvent(1)))
	assert.Zero(t, calls, "handler for another type must not fire")
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), orderEvent(1)))
}

func TestDispatcher_HandlerErrorsJoined(t *testing.T) {
	d := NewInMemoryDispatcher()

	errBoom := errors.New("boom")
	lastRan := false
	d.Subscribe(EventOrderCreated, func(context.Context, Event) error { return errBoom })
	d.Subscribe(EventOrderCreated, func(context.Context, Event) error {
		lastRan = true
		return nil
	})

	err := d.Publish(context.Background(), orderEvent(1))
	assert.ErrorIs(t, err, errBoom)
	assert.True(t, lastRan, "one failing handler must not stop the rest")
}
