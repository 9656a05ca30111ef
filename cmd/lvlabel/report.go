package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/report"
)

var (
	reportFormat string
	reportLimit  int
)

var reportCmd = &cobra.Command{
	Use:   "report <image>...",
	Short: "Summarize component areas and bounding boxes",
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
			s := report.Summarize(path, r)

			switch reportFormat {
			case "yaml":
				err = report.WriteYAML(cmd.OutOrStdout(), s)
			case "text":
				err = report.WriteText(cmd.OutOrStdout(), s, reportLimit)
			default:
				return fmt.Errorf("unknown format: %s (supported: yaml, text)", reportFormat)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "output format: yaml or text")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 20, "max component rows in text output (0 = all)")
	rootCmd.AddCommand(reportCmd)
}
