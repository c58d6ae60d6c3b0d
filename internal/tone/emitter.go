package tone

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	queueSize = 4
	voices    = 4
)

// Emitter plays notes on a background worker. Emit never blocks; notes that
// arrive while the queue is full are dropped.
type Emitter struct {
	player     Player
	sampleRate int
	log        *zap.Logger
	queue      chan int

	mu    sync.Mutex
	notes map[int][]byte
}

// NewEmitter returns an emitter for player. A nil player disables audio.
func NewEmitter(player Player, sampleRate int, log *zap.Logger) *Emitter {
	if player == nil {
		player = NopPlayer{}
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{
		player:     player,
		sampleRate: sampleRate,
		log:        log,
		queue:      make(chan int, queueSize),
		notes:      make(map[int][]byte, len(Scale)),
	}
}

// Emit queues the note for a tile index.
func (e *Emitter) Emit(index int) {
	if e == nil {
		return
	}
	if _, ok := e.player.(NopPlayer); ok {
		return
	}
	select {
	case e.queue <- index:
	default:
		e.log.Debug("note dropped", zap.Int("index", index))
	}
}

// Run drains the queue until ctx is done, then waits for sounding notes.
// Each note plays on its own voice so quick presses overlap; a note that
// finds every voice busy is dropped. Playback failures are logged and
// otherwise ignored.
func (e *Emitter) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(voices + 1)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case index := <-e.queue:
				if !g.TryGo(func() error {
					e.play(ctx, index)
					return nil
				}) {
					e.log.Debug("no free voice, note dropped", zap.Int("index", index))
				}
			}
		}
	})
	return g.Wait()
}

func (e *Emitter) play(ctx context.Context, index int) {
	wav, err := e.note(index)
	if err != nil {
		e.log.Debug("note synthesis failed", zap.Int("index", index), zap.Error(err))
		return
	}
	playCtx, cancel := context.WithTimeout(ctx, 2*Duration)
	defer cancel()
	start := time.Now()
	if err := e.player.Play(playCtx, wav); err != nil {
		e.log.Debug("note playback failed", zap.Int("index", index), zap.Error(err))
		return
	}
	e.log.Debug("note played",
		zap.Int("index", index),
		zap.Float64("hz", Pitch(index)),
		zap.Duration("took", time.Since(start)))
}

// note caches one WAV per scale degree.
func (e *Emitter) note(index int) ([]byte, error) {
	n := len(Scale)
	degree := ((index % n) + n) % n
	e.mu.Lock()
	defer e.mu.Unlock()
	if wav, ok := e.notes[degree]; ok {
		return wav, nil
	}
	wav, err := Note(degree, e.sampleRate)
	if err != nil {
		return nil, err
	}
	e.notes[degree] = wav
	return wav, nil
}
