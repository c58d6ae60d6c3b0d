package tone

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPitchWraps(t *testing.T) {
	tests := []struct {
		index int
		want  float64
	}{
		{0, 261.63},
		{7, 523.25},
		{8, 261.63},
		{9, 293.66},
		{17, 293.66},
		{-1, 523.25},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Pitch(tt.index), "index %d", tt.index)
	}
	require.Equal(t, Pitch(0), Pitch(8))
}

func TestEnvelope(t *testing.T) {
	require.Equal(t, 0.0, Envelope(0))
	require.InDelta(t, 0.1, Envelope(10*time.Millisecond), 1e-9)
	require.InDelta(t, 0.2, Envelope(20*time.Millisecond), 1e-9)
	require.InDelta(t, 0.001, Envelope(time.Second), 1e-9)

	prev := Envelope(20 * time.Millisecond)
	for ms := 30; ms <= 1000; ms += 10 {
		g := Envelope(time.Duration(ms) * time.Millisecond)
		require.Less(t, g, prev, "decay must fall at %dms", ms)
		prev = g
	}
}

func TestSynthesize(t *testing.T) {
	pcm, err := Synthesize(440, 8000)
	require.NoError(t, err)
	require.Len(t, pcm, 8000)
	require.Equal(t, int16(0), pcm[0])

	peak := 0
	for _, s := range pcm {
		peak = max(peak, int(math.Abs(float64(s))))
	}
	require.LessOrEqual(t, peak, int(math.Floor(0.2*math.MaxInt16))+1)
	require.Greater(t, peak, 0)

	_, err = Synthesize(440, 0)
	require.Error(t, err)
}

func TestEncodeWAV(t *testing.T) {
	wav, err := EncodeWAV([]int16{1, -1, 2}, 8000)
	require.NoError(t, err)
	require.Len(t, wav, 44+6)
	require.Equal(t, "RIFF", string(wav[0:4]))
	require.Equal(t, "WAVE", string(wav[8:12]))
	require.Equal(t, "data", string(wav[36:40]))
	require.Equal(t, uint32(42), binary.LittleEndian.Uint32(wav[4:8]))
	require.Equal(t, uint32(8000), binary.LittleEndian.Uint32(wav[24:28]))
	require.Equal(t, uint32(6), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestDetectPlayer(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(name string) (string, error) {
		if name == "aplay" || name == "mpv" {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}

	p, ok := DetectPlayer("auto")
	require.True(t, ok)
	require.Equal(t, ExecPlayer{Path: "/usr/bin/aplay", Args: []string{"-q"}}, p)

	p, ok = DetectPlayer("mpv")
	require.True(t, ok)
	require.Equal(t, ExecPlayer{Path: "/usr/bin/mpv"}, p)

	p, ok = DetectPlayer("none")
	require.False(t, ok)
	require.Equal(t, NopPlayer{}, p)

	p, ok = DetectPlayer("paplay")
	require.False(t, ok)
	require.Equal(t, NopPlayer{}, p)

	lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	_, ok = DetectPlayer("auto")
	require.False(t, ok)
}

type chanPlayer struct {
	played chan []byte
	err    error
}

func (p chanPlayer) Play(_ context.Context, wav []byte) error {
	p.played <- wav
	return p.err
}

func TestEmitterPlaysQueuedNotes(t *testing.T) {
	player := chanPlayer{played: make(chan []byte, 2)}
	e := NewEmitter(player, 8000, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	e.Emit(8)
	e.Emit(0)
	first := <-player.played
	second := <-player.played
	require.Equal(t, first, second, "index 8 and 0 share a pitch")

	want, err := Note(0, 8000)
	require.NoError(t, err)
	require.Equal(t, want, first)

	cancel()
	require.NoError(t, <-done)
}

type gatedPlayer struct {
	started chan struct{}
	release chan struct{}
}

func (p gatedPlayer) Play(ctx context.Context, _ []byte) error {
	p.started <- struct{}{}
	select {
	case <-p.release:
	case <-ctx.Done():
	}
	return nil
}

func TestEmitterOverlapsNotes(t *testing.T) {
	player := gatedPlayer{started: make(chan struct{}, voices), release: make(chan struct{})}
	e := NewEmitter(player, 8000, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	e.Emit(1)
	e.Emit(2)
	// both notes sound before either finishes
	<-player.started
	<-player.started

	close(player.release)
	cancel()
	require.NoError(t, <-done)
}

func TestEmitterSwallowsPlayerErrors(t *testing.T) {
	player := chanPlayer{played: make(chan []byte, 1), err: errors.New("no device")}
	e := NewEmitter(player, 8000, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	e.Emit(3)
	<-player.played
	cancel()
	require.NoError(t, <-done)
}

func TestEmitterNeverBlocks(t *testing.T) {
	e := NewEmitter(chanPlayer{played: make(chan []byte)}, 8000, nil)
	// no worker running: the queue fills and further notes are dropped
	for i := 0; i < 3*queueSize; i++ {
		e.Emit(i)
	}
	require.Len(t, e.queue, queueSize)

	var nilEmitter *Emitter
	nilEmitter.Emit(1)

	silent := NewEmitter(nil, 0, nil)
	silent.Emit(1)
	require.Empty(t, silent.queue)
}
