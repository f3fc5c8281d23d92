// Package ebus fans gauge values out to subscribers by topic.
package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

var (
	ErrFull   = errors.New("publish channel full")
	ErrClosed = errors.New("bus closed")
)

const DefaultTTL = 1 * time.Minute

type Message struct {
	Topic string
	Data  float64
}

type Bus struct {
	in    chan Message
	unsub chan chan float64
	done  chan struct{}

	subs      map[string][]chan float64
	subsMutex sync.Mutex

	// last value per topic, repeats are not forwarded
	cache *ttlcache.Cache[string, float64]

	aggregators     []*EventAggregator
	aggregatorsLock sync.Mutex

	closeOnce sync.Once
}

// New starts a bus. Values repeated within ttl are dropped and handed to
// late subscribers.
func New(ttl time.Duration) *Bus {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b := &Bus{
		in:    make(chan Message, 100),
		unsub: make(chan chan float64, 100),
		done:  make(chan struct{}),
		subs:  make(map[string][]chan float64),
		cache: ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](ttl),
		),
	}
	go b.cache.Start()
	go b.run()
	return b
}

func (b *Bus) run() {
	for {
		select {
		case <-b.done:
			b.subsMutex.Lock()
			for topic, subz := range b.subs {
				for _, sub := range subz {
					close(sub)
				}
				delete(b.subs, topic)
			}
			b.subsMutex.Unlock()
			return
		case msg := <-b.in:
			if v := b.cache.Get(msg.Topic); v != nil && v.Value() == msg.Data {
				continue
			}
			b.cache.Set(msg.Topic, msg.Data, ttlcache.DefaultTTL)
			b.subsMutex.Lock()
			for _, sub := range b.subs[msg.Topic] {
				select {
				case sub <- msg.Data:
				default:
				}
			}
			b.subsMutex.Unlock()
			b.aggregatorsLock.Lock()
			for _, agg := range b.aggregators {
				agg.fun(msg.Topic, msg.Data)
			}
			b.aggregatorsLock.Unlock()
		case unsub := <-b.unsub:
			b.removeSub(unsub)
		}
	}
}

func (b *Bus) removeSub(unsub chan float64) {
	b.subsMutex.Lock()
	defer b.subsMutex.Unlock()
	for topic, subz := range b.subs {
		for i, sub := range subz {
			if sub == unsub {
				b.subs[topic] = append(subz[:i], subz[i+1:]...)
				close(unsub)
				if len(b.subs[topic]) == 0 {
					delete(b.subs, topic)
				}
				return
			}
		}
	}
}

func (b *Bus) Publish(topic string, data float64) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}
	select {
	case b.in <- Message{Topic: topic, Data: data}:
		return nil
	default:
		return ErrFull
	}
}

// Subscribe returns a channel receiving the values of topic, starting
// with the last published one if still cached.
func (b *Bus) Subscribe(topic string) chan float64 {
	respChan := make(chan float64, 100)
	b.subsMutex.Lock()
	select {
	case <-b.done:
		b.subsMutex.Unlock()
		close(respChan)
		return respChan
	default:
	}
	b.subs[topic] = append(b.subs[topic], respChan)
	// run caches before it takes subsMutex, so anything it delivers after
	// this is at least as new as the cached value.
	if itm := b.cache.Get(topic); itm != nil {
		respChan <- itm.Value()
	}
	b.subsMutex.Unlock()
	return respChan
}

// SubscribeFunc calls f for every value of topic on its own goroutine and
// returns a function that unsubscribes it.
func (b *Bus) SubscribeFunc(topic string, f func(float64)) func() {
	respChan := b.Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		b.Unsubscribe(respChan)
	}
}

func (b *Bus) Unsubscribe(channel chan float64) {
	select {
	case b.unsub <- channel:
	case <-b.done:
	}
}

// Close stops the bus and closes every subscriber channel.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
		b.cache.Stop()
		log.Println("ebus closed")
	})
}
