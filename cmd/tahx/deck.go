package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/tahx-org/tahx/internal/bento"
	"github.com/tahx-org/tahx/internal/config"
	"github.com/tahx-org/tahx/internal/i18n"
	"github.com/tahx-org/tahx/internal/tone"
	"github.com/tahx-org/tahx/internal/tui"
)

// runDeck starts the interactive deck, or prints the layout when stdout is
// not a terminal.
func runDeck(cmd *cobra.Command, args []string) error {
	reg, err := bento.NewRegistry(bento.DefaultTiles()...)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printLayout(cmd.OutOrStdout(), reg, bento.Columns(80), nil)
	}

	catalog, err := i18n.Load()
	if err != nil {
		return err
	}

	player := newPlayer(cfg.Audio)
	emitter := tone.NewEmitter(player, cfg.Audio.SampleRate, logger.Named("tone"))
	board := bento.NewBoard(reg, emitter, logger.Named("board"))
	app := tui.New(board, catalog, settingsFrom(cfg), logger.Named("tui"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)

	if _, err := os.Stat(config.Path(configPath)); err == nil {
		config.Watch(vcfg, func(c config.Config, err error) {
			if err != nil {
				logger.Warn("config reload rejected", zap.Error(err))
				return
			}
			if err := applyFlags(&c); err != nil {
				logger.Warn("config reload rejected", zap.Error(err))
				return
			}
			p.Send(tui.SettingsMsg(settingsFrom(c)))
		})
	}

	_, silent := player.(tone.NopPlayer)
	logger.Info("deck starting",
		zap.String("theme", cfg.UI.Theme),
		zap.Bool("audio", !silent))

	g.Go(func() error { return emitter.Run(ctx) })
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run deck: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// newPlayer resolves the audio player, falling back to silence.
func newPlayer(ac config.AudioConfig) tone.Player {
	if !ac.Enabled {
		return tone.NopPlayer{}
	}
	player, ok := tone.DetectPlayer(ac.Player)
	if !ok {
		logger.Info("no audio player found, notes disabled", zap.String("player", ac.Player))
	}
	return player
}

// settingsFrom maps config onto the deck's presentation settings.
func settingsFrom(c config.Config) tui.Settings {
	return tui.Settings{
		Theme: c.Theme(),
		Lang:  c.Language(),
		Grips: c.UI.Grips,
		Tick:  time.Duration(c.UI.TickMS) * time.Millisecond,
	}
}
