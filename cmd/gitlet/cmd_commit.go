package main

import (
	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <message>",
		Short: "Record a snapshot of staged changes",
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
			if _, err := repo.Commit(r, m, args[0], nil); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}
