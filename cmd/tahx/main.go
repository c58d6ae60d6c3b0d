package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tahx-org/tahx/internal/config"
	"github.com/tahx-org/tahx/internal/i18n"
	"github.com/tahx-org/tahx/internal/theme"
)

var (
	// Global flags
	configPath string
	themeFlag  string
	langFlag   string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg    config.Config
	vcfg   *viper.Viper
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tahx",
	Short: "Tahx - the negative one screen",
	Long: `Tahx renders a reorderable bento grid of life dashboards in the terminal.

Drag a tile by its grip (or press space on it) and drop it onto another tile
to move it there. Each tile plays its own note when lifted.

Run without arguments to start the interactive deck. When stdout is not a
terminal the current layout is printed instead.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDeck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $TAHX_CONFIG or ~/.config/tahx/config.toml)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme: pancanvas, panyuliang, cyber, panjade")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "interface language: en, zh")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	layoutCmd.Flags().IntVar(&layoutColumns, "columns", 4, "grid columns")
	layoutCmd.Flags().StringArrayVar(&layoutMoves, "move", nil, "apply a move before printing, as source:target (repeatable)")
	toneCmd.Flags().StringVar(&toneOut, "wav", "", "write the note to this file instead of playing it")

	rootCmd.AddCommand(layoutCmd, toneCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and opens the log file.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, vcfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(&cfg); err != nil {
		return err
	}
	logger, err = newLogger(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// applyFlags overlays --theme and --lang on c.
func applyFlags(c *config.Config) error {
	if themeFlag != "" {
		n, err := theme.Parse(themeFlag)
		if err != nil {
			return fmt.Errorf("--theme: %w", err)
		}
		c.UI.Theme = string(n)
	}
	if langFlag != "" {
		l, err := i18n.Parse(langFlag)
		if err != nil {
			return fmt.Errorf("--lang: %w", err)
		}
		c.UI.Language = string(l)
	}
	return nil
}

// newLogger writes JSON logs to the configured file. The terminal belongs to
// the deck, so nothing is logged to stderr.
func newLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	if err := os.MkdirAll(filepath.Dir(lc.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{lc.Path}
	zc.ErrorOutputPaths = []string{lc.Path}
	return zc.Build()
}
