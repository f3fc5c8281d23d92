package ebus_test

import (
	"testing"
	"time"

	"github.com/roffe/txgauge/pkg/ebus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan float64) float64 {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for value")
	}
	return 0
}

func TestPublish(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		data    float64
		closed  bool
		wantErr error
	}{
		{name: "open", topic: "test", data: 1.23},
		{name: "closed", topic: "test", data: 1.23, closed: true, wantErr: ebus.ErrClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := ebus.New(time.Minute)
			defer bus.Close()
			if tt.closed {
				bus.Close()
			}
			err := bus.Publish(tt.topic, tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubscribe(t *testing.T) {
	bus := ebus.New(time.Minute)
	defer bus.Close()

	ch := bus.Subscribe("rpm")
	require.NoError(t, bus.Publish("rpm", 3.14))
	assert.Equal(t, 3.14, recv(t, ch))

	// repeated values are dropped
	require.NoError(t, bus.Publish("rpm", 3.14))
	require.NoError(t, bus.Publish("rpm", 2.0))
	assert.Equal(t, 2.0, recv(t, ch))

	bus.Unsubscribe(ch)
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
}

func TestLateSubscriberGetsLastValue(t *testing.T) {
	bus := ebus.New(time.Minute)
	defer bus.Close()

	first := bus.Subscribe("speed")
	require.NoError(t, bus.Publish("speed", 88))
	recv(t, first)

	late := bus.Subscribe("speed")
	assert.Equal(t, 88.0, recv(t, late))
}

func TestSubscribeWhilePublishingKeepsOrder(t *testing.T) {
	const n = 2000
	for round := 0; round < 20; round++ {
		bus := ebus.New(time.Minute)
		require.NoError(t, bus.Publish("rpm", 0))

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 1; i < n; i++ {
				for bus.Publish("rpm", float64(i)) == ebus.ErrFull {
					time.Sleep(time.Microsecond)
				}
			}
		}()
		time.Sleep(time.Duration(round*50) * time.Microsecond)

		ch := bus.Subscribe("rpm")
		last := -1.0
		idle := time.After(time.Hour)
	read:
		for {
			select {
			case v := <-ch:
				require.GreaterOrEqual(t, v, last, "round %d", round)
				last = v
			case <-done:
				done = nil
				idle = time.After(100 * time.Millisecond)
			case <-idle:
				break read
			}
		}
		assert.GreaterOrEqual(t, last, 0.0)
		bus.Close()
	}
}

func TestSubscribeFunc(t *testing.T) {
	bus := ebus.New(time.Minute)
	defer bus.Close()

	got := make(chan float64, 1)
	cleanup := bus.SubscribeFunc("temp", func(v float64) { got <- v })
	require.NotNil(t, cleanup)
	require.NoError(t, bus.Publish("temp", 2.71))
	assert.Equal(t, 2.71, recv(t, got))
	cleanup()
}

func TestDiffAggregator(t *testing.T) {
	bus := ebus.New(time.Minute)
	defer bus.Close()

	bus.RegisterAggregator(bus.DiffAggregator("in", "req", "diff"))
	out := bus.Subscribe("diff")
	require.NoError(t, bus.Publish("in", 400))
	require.NoError(t, bus.Publish("req", 550))
	assert.Equal(t, 150.0, recv(t, out))
}

func TestCloseClosesSubscribers(t *testing.T) {
	bus := ebus.New(time.Minute)
	ch := bus.Subscribe("x")
	bus.Close()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
	_, ok := <-bus.Subscribe("y")
	assert.False(t, ok)
}
