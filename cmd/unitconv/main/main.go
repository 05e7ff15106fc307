package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/unitconv/cmd/unitconv"
	"github.com/arthur-debert/unitconv/pkg/config"
	"github.com/arthur-debert/unitconv/pkg/errors"
	"github.com/arthur-debert/unitconv/pkg/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := unitconv.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		mode := config.ColorAuto
		if noColor, _ := rootCmd.PersistentFlags().GetBool("no-color"); noColor {
			mode = config.ColorNever
		}

		// Print the error in red
		r := output.NewRenderer(os.Stderr, mode)
		r.Println(output.StyleError, fmt.Sprintf(unitconv.MsgErrorFormat, errors.Message(err)))

		stop()
		os.Exit(1)
	}
}
