// Command lvlabel finds 4-connected components in raster images and renders
// their boxed and colorized views.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvlabel/labeler"
)

// Exit codes. A timed-out scan is fatal to the run and gets its own code.
const (
	exitError   = 1
	exitTimeout = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		if errors.Is(err, labeler.ErrTimeout) {
			os.Exit(exitTimeout)
		}
		os.Exit(exitError)
	}
}
