package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitlet/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stdout, err)
		return
	}
	// color.NoColor already starts true when stdout is not a terminal;
	// the config can only turn color off, never force it on.
	color.NoColor = color.NoColor || !cfg.Color.Enabled

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// Spec's error-handling design (§6 "Exit"): a single line to
		// standard output, then a normal exit. No distinct exit codes.
		fmt.Fprintln(os.Stdout, err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gitlet",
		Short:         "A miniature content-addressed version control system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newCommitCmd())
	root.AddCommand(newRmCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newGlobalLogCmd())
	root.AddCommand(newFindCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newCheckoutCmd())
	root.AddCommand(newBranchCmd())
	root.AddCommand(newRmBranchCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newMergeCmd())
	root.AddCommand(newAddRemoteCmd())
	root.AddCommand(newRmRemoteCmd())
	root.AddCommand(newPushCmd())
	root.AddCommand(newFetchCmd())
	root.AddCommand(newPullCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newArchiveCmd())
	root.AddCommand(newSignCmd())
	root.AddCommand(newVerifySignatureCmd())

	return root
}
