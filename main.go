package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "exprtree [command] (flags)",
	Short:         "arithmetic expression tree tool",
	Long:          ``,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		demoCmd,
		sampleCmd,
	)
}

func main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
