package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <image>...",
	Short: "Print the number of components in each image",
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
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", path, r.Count, r.Elapsed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
