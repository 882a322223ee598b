package main

import (
	"fmt"

	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new gitlet repository in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := repo.Init("."); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Initialized a gitlet repository.")
			return nil
		},
	}
}
