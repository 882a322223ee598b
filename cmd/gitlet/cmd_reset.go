package main

import (
	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <commit>",
		Short: "Move the current branch and head to a commit, restoring the working tree",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 1); err != nil {
				return err
			}
			m, err := r.LoadManagement()
			if err != nil {
				return err
			}
			if err := repo.Reset(r, m, args[0]); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}
