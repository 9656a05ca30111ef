package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/internal/config"
	"github.com/katalvlaran/lvlabel/labeler"
)

var (
	cfgPath string
	cfg     *config.Config
	logger  *slog.Logger

	flagMode     string
	flagDeadline time.Duration
	flagSeed     int64
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "lvlabel",
	Short: "Label 4-connected components in raster images",
	Long: `lvlabel binarizes an image by luminance, labels its 4-connected foreground
regions with a two-pass union-find scan, and reports or renders the result.
Supported inputs: BMP, PNG, JPEG, GIF, TIFF, WebP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		flags := cmd.Flags()
		if flags.Changed("mode") {
			cfg.Mode = flagMode
		}
		if flags.Changed("deadline") {
			cfg.Deadline = flagDeadline
		}
		if flags.Changed("seed") {
			cfg.Seed = flagSeed
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = flagLogLevel
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid settings: %w", err)
		}

		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.Level(),
		}))
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to YAML config file")
	pf.StringVarP(&flagMode, "mode", "m", "brighter", "foreground selection: brighter (0) or darker (1)")
	pf.DurationVar(&flagDeadline, "deadline", labeler.DefaultDeadline, "time budget for one scan")
	pf.Int64Var(&flagSeed, "seed", 0, "colorize seed (0 = fixed default)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "debug, info, warn or error")
}

// open builds a processor for path from the active settings.
func open(path string) (*labeler.Processor, error) {
	return labeler.New(path, cfg.LabelMode(),
		labeler.WithDeadline(cfg.Deadline),
		labeler.WithSeed(cfg.Seed),
		labeler.WithLogger(logger),
	)
}

// fail tags err with the file it concerns. A timeout ends the whole run.
func fail(path string, err error) error {
	if errors.Is(err, labeler.ErrTimeout) {
		logger.Error("aborting run", "path", path, "err", err)
	}
	return fmt.Errorf("%s: %w", path, err)
}
