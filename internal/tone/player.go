package tone

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Player plays an encoded WAV note.
type Player interface {
	Play(ctx context.Context, wav []byte) error
}

// NopPlayer discards every note.
type NopPlayer struct{}

func (NopPlayer) Play(context.Context, []byte) error { return nil }

// ExecPlayer hands notes to an external audio player binary.
type ExecPlayer struct {
	Path string
	Args []string
}

// candidates are tried in order when the player is "auto".
var candidates = []ExecPlayer{
	{Path: "paplay"},
	{Path: "aplay", Args: []string{"-q"}},
	{Path: "afplay"},
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// DetectPlayer resolves a configured player name. "none" or "" disables
// audio, "auto" picks the first known player on PATH, anything else is taken
// as a binary name. A player that cannot be found yields NopPlayer and false.
func DetectPlayer(name string) (Player, bool) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "", "none", "off":
		return NopPlayer{}, false
	case "auto":
		for _, c := range candidates {
			if path, err := lookPath(c.Path); err == nil {
				return ExecPlayer{Path: path, Args: c.Args}, true
			}
		}
		return NopPlayer{}, false
	}
	path, err := lookPath(name)
	if err != nil {
		return NopPlayer{}, false
	}
	return ExecPlayer{Path: path}, true
}

// Play writes the note to a temporary file and runs the player on it.
func (p ExecPlayer) Play(ctx context.Context, wav []byte) error {
	f, err := os.CreateTemp("", "tahx-note-*.wav")
	if err != nil {
		return fmt.Errorf("create note file: %w", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(wav); err != nil {
		_ = f.Close()
		return fmt.Errorf("write note file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close note file: %w", err)
	}
	args := append(append([]string(nil), p.Args...), f.Name())
	cmd := exec.CommandContext(ctx, p.Path, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", p.Path, err, strings.TrimSpace(string(out)))
	}
	return nil
}
