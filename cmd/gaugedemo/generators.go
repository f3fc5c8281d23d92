package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/roffe/txgauge/pkg/config"
	"github.com/roffe/txgauge/pkg/ebus"
)

type generator interface {
	Next(now time.Time) []float64
}

func newGenerator(g config.Gauge, rnd *rand.Rand) generator {
	var gen generator
	switch g.Generator {
	case config.GenClock:
		gen = clockGen{}
	case config.GenRandom:
		gen = &randomGen{rnd: rnd}
	default:
		gen = &sweepGen{delta: 1}
	}
	return scaled{gen: gen, offset: g.Offset, scale: g.Scale}
}

// sweepGen bounces between 0 and 100 one unit per tick.
type sweepGen struct {
	data, delta float64
}

func (s *sweepGen) Next(time.Time) []float64 {
	s.data += s.delta
	if s.data >= 100 {
		s.delta = -1
	} else if s.data <= 0 {
		s.delta = 1
	}
	return []float64{s.data}
}

// clockGen drives the hour, minute and second needles of a 0..60 dial.
type clockGen struct{}

func (clockGen) Next(now time.Time) []float64 {
	h, m, s := float64(now.Hour()%12), float64(now.Minute()), float64(now.Second())
	return []float64{h*5 + m/12, m + s/60, s}
}

// randomGen walks up to 10 units per tick within 0..100.
type randomGen struct {
	rnd *rand.Rand
	x   float64
}

func (r *randomGen) Next(time.Time) []float64 {
	r.x += float64(r.rnd.Intn(21) - 10)
	r.x = min(max(r.x, 0), 100)
	return []float64{r.x}
}

type scaled struct {
	gen           generator
	offset, scale float64
}

func (s scaled) Next(now time.Time) []float64 {
	vals := s.gen.Next(now)
	for i, v := range vals {
		vals[i] = v*s.scale + s.offset
	}
	return vals
}

// feed publishes the generator output on topics every interval until ctx
// is done.
func feed(ctx context.Context, bus *ebus.Bus, interval time.Duration, topics []string, gen generator) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			for i, v := range gen.Next(now) {
				if i >= len(topics) {
					break
				}
				if err := bus.Publish(topics[i], v); err != nil {
					if errors.Is(err, ebus.ErrClosed) {
						return nil
					}
					log.Printf("publish %s: %v", topics[i], err)
				}
			}
		}
	}
}
