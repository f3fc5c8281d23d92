// Package sound plays the alarm chime.
package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate   = 44100
	channelCount = 2
)

var (
	octx     *oto.Context
	initOnce sync.Once
	initErr  error
)

// player is the part of *oto.Player the chime uses.
type player interface {
	Play()
	IsPlaying() bool
	Err() error
	Close() error
}

var (
	newPlayer = func(pcm []byte) player { return octx.NewPlayer(bytes.NewReader(pcm)) }
	resume    = func() error { return octx.Resume() }
)

func Init() error {
	initOnce.Do(func() {
		initErr = initContext()
	})
	return initErr
}

func initContext() error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	// only one context may exist per process, a failed one can not be retried
	otoCtx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("sound.Init failed: %w", err)
	}
	select {
	case <-readyChan:
		octx = otoCtx
		return nil
	case <-time.After(10 * time.Second):
		return fmt.Errorf("sound.Init timed out")
	}
}

// Tone returns signed 16 bit little endian stereo PCM of a sine wave with
// a short linear fade out.
func Tone(freq float64, d time.Duration, volume float64) []byte {
	n := int(d.Seconds() * sampleRate)
	var buf bytes.Buffer
	buf.Grow(n * channelCount * 2)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * volume * fade * math.MaxInt16)
		for c := 0; c < channelCount; c++ {
			binary.Write(&buf, binary.LittleEndian, v)
		}
	}
	return buf.Bytes()
}

// play starts pcm on a fresh player. A player that fails to start is closed,
// the context resumed and the start retried.
func play(pcm []byte) error {
	return retry.Do(
		func() error {
			p := newPlayer(pcm)
			p.Play()
			if err := p.Err(); err != nil {
				if cerr := p.Close(); cerr != nil {
					log.Printf("player.Close failed: %v", cerr)
				}
				if rerr := resume(); rerr != nil {
					return retry.Unrecoverable(fmt.Errorf("sound.play resume: %w", rerr))
				}
				return fmt.Errorf("sound.play: %w", err)
			}
			go func() {
				for p.IsPlaying() {
					time.Sleep(5 * time.Millisecond)
				}
				if err := p.Close(); err != nil {
					log.Printf("player.Close failed: %v", err)
				}
			}()
			return nil
		},
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("sound.play attempt %d: %v", n+1, err)
		}),
	)
}

// Chime plays a short tone, higher alarm bands sound higher.
func Chime(band int) error {
	if err := Init(); err != nil {
		return err
	}
	freq := 660 * math.Pow(2, float64(band)/12*4)
	return play(Tone(freq, 150*time.Millisecond, .4))
}
