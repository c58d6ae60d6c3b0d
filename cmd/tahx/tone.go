package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tahx-org/tahx/internal/tone"
)

var toneOut string

var toneCmd = &cobra.Command{
	Use:   "tone INDEX",
	Short: "Play the note a tile emits when lifted",
	Long: `Plays the note for the tile at INDEX in the grid order. Notes follow the
C major scale from C4 and wrap every eight tiles.

  tahx tone 0            # C4, 261.63 Hz
  tahx tone 3 --wav f.wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index %q: %w", args[0], err)
		}
		wav, err := describeNote(cmd.OutOrStdout(), index, cfg.Audio.SampleRate)
		if err != nil {
			return err
		}
		if toneOut != "" {
			if err := os.WriteFile(toneOut, wav, 0o644); err != nil {
				return fmt.Errorf("write note: %w", err)
			}
			return nil
		}
		player := newPlayer(cfg.Audio)
		if _, silent := player.(tone.NopPlayer); silent {
			fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("no audio player available"))
			return nil
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := player.Play(ctx, wav); err != nil {
			logger.Warn("note playback failed", zap.Int("index", index), zap.Error(err))
			return fmt.Errorf("play note: %w", err)
		}
		return nil
	},
}

// describeNote prints the pitch for index and returns the encoded note.
func describeNote(w io.Writer, index, sampleRate int) ([]byte, error) {
	wav, err := tone.Note(index, sampleRate)
	if err != nil {
		return nil, err
	}
	_, err = fmt.Fprintf(w, "tile %d: %s Hz\n", index, color.CyanString("%.2f", tone.Pitch(index)))
	return wav, err
}
