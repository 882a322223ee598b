package main

import (
	"gitlet/pkg/archive"
	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <commit> <out-file>",
		Short: "Export a commit's tracked files to a compressed archive",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 2); err != nil {
				return err
			}
			resolved, err := r.Store.ResolvePrefix(args[0])
			if err != nil {
				return err
			}
			if resolved == "" {
				return repo.ErrNoSuchCommit
			}
			c, err := r.Store.GetCommit(resolved)
			if err != nil {
				return err
			}
			return archive.ExportToFile(r.Store, c, args[1])
		},
	}
}
