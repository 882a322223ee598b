package main

import (
	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch <name>",
		Short: "Create a new branch pointing at head",
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
			if err := repo.Branch(m, args[0]); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}

func newRmBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-branch <name>",
		Short: "Delete a branch pointer",
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
			if err := repo.RmBranch(m, args[0]); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}
