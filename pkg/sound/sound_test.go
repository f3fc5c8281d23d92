package sound

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone(t *testing.T) {
	pcm := Tone(441, 100*time.Millisecond, 1)
	assert.Len(t, pcm, 4410*channelCount*2)

	first := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	assert.Zero(t, first)
	// quarter period of 441Hz is 25 samples, both channels carry it
	peak := int16(binary.LittleEndian.Uint16(pcm[25*4:]))
	assert.Greater(t, peak, int16(30000))
	assert.Equal(t, peak, int16(binary.LittleEndian.Uint16(pcm[25*4+2:])))

	assert.Empty(t, Tone(440, 0, 1))
}

type fakePlayer struct {
	err    error
	closed bool
}

func (f *fakePlayer) Play()           {}
func (f *fakePlayer) IsPlaying() bool { return false }
func (f *fakePlayer) Err() error      { return f.err }
func (f *fakePlayer) Close() error    { f.closed = true; return nil }

func stubPlayers(t *testing.T, players []*fakePlayer, resumeErr error) (resumes *int) {
	t.Helper()
	oldNew, oldResume := newPlayer, resume
	t.Cleanup(func() { newPlayer, resume = oldNew, oldResume })
	n, r := 0, 0
	newPlayer = func([]byte) player {
		p := players[n]
		n++
		return p
	}
	resume = func() error {
		r++
		return resumeErr
	}
	return &r
}

func TestPlayRetriesFailedStart(t *testing.T) {
	players := []*fakePlayer{
		{err: errors.New("device busy")},
		{err: errors.New("device busy")},
		{},
	}
	resumes := stubPlayers(t, players, nil)

	require.NoError(t, play(Tone(440, time.Millisecond, 1)))
	assert.Equal(t, 2, *resumes)
	assert.True(t, players[0].closed)
	assert.True(t, players[1].closed)
}

func TestPlayGivesUp(t *testing.T) {
	busy := errors.New("device busy")
	players := []*fakePlayer{{err: busy}, {err: busy}, {err: busy}, {}}
	stubPlayers(t, players, nil)

	err := play(nil)
	assert.ErrorIs(t, err, busy)
	assert.False(t, players[3].closed)
}

func TestPlayStopsWhenResumeFails(t *testing.T) {
	players := []*fakePlayer{{err: errors.New("device busy")}, {}}
	resumes := stubPlayers(t, players, errors.New("suspended"))

	err := play(nil)
	assert.ErrorContains(t, err, "suspended")
	assert.Equal(t, 1, *resumes)
}
