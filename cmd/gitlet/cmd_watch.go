package main

import (
	"context"
	"os"
	"os/signal"

	"gitlet/pkg/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the working directory, auto-staging modified tracked files until interrupted",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 0); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return watch.Run(ctx, r, cmd.OutOrStdout())
		},
	}
}
