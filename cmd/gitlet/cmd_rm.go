package main

import (
	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file>",
		Short: "Unstage a file, or stage it for removal",
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
			if err := repo.Rm(r, m, args[0]); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}
