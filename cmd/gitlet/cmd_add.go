package main

import (
	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Stage a file for the next commit",
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
			if err := repo.Add(r, m, args[0]); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}
