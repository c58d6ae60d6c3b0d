package tone

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"fortio.org/safecast"
)

// Synthesize renders one note as 16-bit mono PCM.
func Synthesize(freq float64, sampleRate int) ([]int16, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("synthesize: sample rate %d", sampleRate)
	}
	n := int(Duration.Seconds() * float64(sampleRate))
	out := make([]int16, n)
	for i := range out {
		t := time.Duration(float64(i) / float64(sampleRate) * float64(time.Second))
		v := math.Sin(2*math.Pi*freq*t.Seconds()) * Envelope(t)
		s, err := safecast.Conv[int16](int(math.Round(v * math.MaxInt16)))
		if err != nil {
			return nil, fmt.Errorf("synthesize sample %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// EncodeWAV wraps mono 16-bit PCM in a RIFF/WAVE container.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	dataLen, err := safecast.Conv[uint32](len(samples) * 2)
	if err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	rate, err := safecast.Conv[uint32](sampleRate)
	if err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)
	var buf bytes.Buffer
	buf.Grow(44 + int(dataLen))
	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		36 + dataLen,
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(1), // PCM
		uint16(channels),
		rate,
		rate * blockAlign,
		uint16(blockAlign),
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		dataLen,
	}
	for _, field := range header {
		if err := binary.Write(&buf, binary.LittleEndian, field); err != nil {
			return nil, fmt.Errorf("encode wav header: %w", err)
		}
	}
	if err := binary.Write(&buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("encode wav data: %w", err)
	}
	return buf.Bytes(), nil
}

// Note renders the WAV for a tile index.
func Note(index, sampleRate int) ([]byte, error) {
	pcm, err := Synthesize(Pitch(index), sampleRate)
	if err != nil {
		return nil, err
	}
	return EncodeWAV(pcm, sampleRate)
}
