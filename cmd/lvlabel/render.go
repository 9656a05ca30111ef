package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/internal/config"
	"github.com/katalvlaran/lvlabel/labeler"
	"github.com/katalvlaran/lvlabel/pixelgrid"
)

var (
	renderViews  []string
	renderOutDir string
	renderFormat string
)

var renderCmd = &cobra.Command{
	Use:   "render <image>...",
	Short: "Write binarized, colorized, highlighted and identified views",
	Long: `render writes one file per view and input image, named <base>_<view>.<format>
in the output directory. Views: binary, colorize, highlight, identify.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("views") {
			cfg.Views = renderViews
		}
		if flags.Changed("out") {
			cfg.OutputDir = renderOutDir
		}
		if flags.Changed("format") {
			cfg.Format = renderFormat
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if _, err := pixelgrid.FormatOf("x." + cfg.Format); err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}

		for _, path := range args {
			p, err := open(path)
			if err != nil {
				return fail(path, err)
			}
			for _, view := range cfg.Views {
				out, err := renderView(cmd.Context(), p, view)
				if err != nil {
					return fail(path, err)
				}
				base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				dst := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s.%s", base, view, cfg.Format))
				if err := pixelgrid.Save(dst, out); err != nil {
					return fail(path, err)
				}
				logger.Info("view written", "view", view, "file", dst)
			}
		}
		return nil
	},
}

func renderView(ctx context.Context, p *labeler.Processor, view string) (*pixelgrid.Grid, error) {
	switch view {
	case config.ViewBinary:
		return p.Binary(ctx)
	case config.ViewColorize:
		return p.Colorize(ctx)
	case config.ViewHighlight:
		return p.Highlight(ctx)
	case config.ViewIdentify:
		return p.Identify(ctx)
	}
	return nil, fmt.Errorf("unknown view %q", view)
}

func init() {
	renderCmd.Flags().StringSliceVar(&renderViews, "views", config.AllViews, "views to write")
	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", ".", "output directory")
	renderCmd.Flags().StringVar(&renderFormat, "format", "png", "output format: png, bmp, jpeg, gif or tiff")
	rootCmd.AddCommand(renderCmd)
}
