package main

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/gridgraph"
	"github.com/katalvlaran/lvlabel/labeler"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <image>...",
	Short: "Check labeling invariants and compare against a flood-fill count",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			p, err := open(path)
			if err != nil {
				return fail(path, err)
			}
			r, err := p.Result(cmd.Context())
			if err != nil {
				return fail(path, err)
			}
			if err := r.Verify(); err != nil {
				return fail(path, err)
			}
			fg := r.Mode.Foreground()
			gg, err := gridgraph.FromGrid(r.Binary, func(c color.RGBA) bool { return c == fg })
			if err != nil {
				return fail(path, err)
			}
			if n := len(gg.ConnectedComponents()); n != r.Count {
				return fail(path, fmt.Errorf("%w: two-pass count %d, flood fill %d", labeler.ErrInvariant, r.Count, n))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tok\t%d components\n", path, r.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
