package main

import (
	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

// newCheckoutCmd handles all three forms from §4.8 under one verb,
// distinguished by argument count and the literal "--" separator,
// matching the source tool's single-command dispatch.
func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout (-- <file> | <commit> -- <file> | <branch>)",
		Short: "Restore files from a commit, or switch branches",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			switch len(args) {
			case 2:
				if args[0] != "--" {
					return repo.ErrBadArgs
				}
				m, err := r.LoadManagement()
				if err != nil {
					return err
				}
				head, err := r.Store.GetCommit(m.Head)
				if err != nil {
					return err
				}
				return repo.CheckoutFileFromCommit(r, head, args[1])
			case 3:
				if args[1] != "--" {
					return repo.ErrBadArgs
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
				return repo.CheckoutFileFromCommit(r, c, args[2])
			case 1:
				m, err := r.LoadManagement()
				if err != nil {
					return err
				}
				if err := repo.CheckoutBranch(r, m, args[0]); err != nil {
					return err
				}
				return finish(r, m)
			default:
				return repo.ErrBadArgs
			}
		},
	}
}
