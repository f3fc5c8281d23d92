package main

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/roffe/txgauge/pkg/config"
	"github.com/roffe/txgauge/pkg/ebus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepBounces(t *testing.T) {
	gen := newGenerator(config.Gauge{Generator: config.GenSweep, Scale: 1}, nil)
	var last float64
	for i := 0; i < 100; i++ {
		last = gen.Next(time.Time{})[0]
	}
	assert.Equal(t, 100.0, last)
	assert.Equal(t, 99.0, gen.Next(time.Time{})[0])
}

func TestSweepScaled(t *testing.T) {
	gen := newGenerator(config.Gauge{Generator: config.GenSweep, Offset: -40, Scale: 1.8}, nil)
	assert.InDelta(t, -38.2, gen.Next(time.Time{})[0], 1e-9)
}

func TestClock(t *testing.T) {
	gen := newGenerator(config.Gauge{Generator: config.GenClock, Scale: 1}, nil)
	got := gen.Next(time.Date(2024, 1, 1, 15, 30, 45, 0, time.UTC))
	assert.Equal(t, []float64{17.5, 30.75, 45}, got)
}

func TestRandomStaysInRange(t *testing.T) {
	gen := newGenerator(config.Gauge{Generator: config.GenRandom, Scale: 1}, rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		v := gen.Next(time.Time{})[0]
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 100.0)
	}
}

func TestFeedPublishes(t *testing.T) {
	bus := ebus.New(time.Minute)
	defer bus.Close()
	ch := bus.Subscribe("g1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- feed(ctx, bus, 5*time.Millisecond, []string{"g1"}, &sweepGen{delta: 1})
	}()

	select {
	case v := <-ch:
		assert.Equal(t, 1.0, v)
	case <-time.After(2 * time.Second):
		t.Fatal("no value published")
	}
	cancel()
	assert.NoError(t, <-done)
}
