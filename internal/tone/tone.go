// Package tone turns tile presses into short synthesized notes.
//
// A note is one second of a sine wave at a pitch from an eight note major
// scale, shaped by a quick attack and an exponential decay. Playback goes
// through whatever audio player the host has; without one every call is a
// silent no-op.
package tone

import (
	"math"
	"time"
)

// Scale is C4 through C5 in Hz.
var Scale = [8]float64{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88, 523.25}

// Pitch maps a tile index onto Scale, wrapping every eight tiles.
func Pitch(index int) float64 {
	n := len(Scale)
	return Scale[((index%n)+n)%n]
}

const (
	DefaultSampleRate = 44100
	Duration          = time.Second
	attack            = 20 * time.Millisecond
	peakGain          = 0.2
	floorGain         = 0.001
)

// Envelope returns the gain at t: a linear ramp from silence to the peak
// over the attack, then an exponential fall to the floor at Duration.
func Envelope(t time.Duration) float64 {
	switch {
	case t <= 0:
		return 0
	case t < attack:
		return peakGain * float64(t) / float64(attack)
	case t >= Duration:
		return floorGain
	}
	progress := float64(t-attack) / float64(Duration-attack)
	return peakGain * math.Pow(floorGain/peakGain, progress)
}
