package main

import (
	"errors"
	"fmt"

	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge another branch into the current branch",
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

			result, mergeErr := repo.Merge(r, m, args[0])

			// AncestorMerge leaves no state to persist; every other
			// outcome (fast-forward, conflict, ordinary merge commit)
			// has already mutated m and must be saved before the
			// message is reported.
			if !errors.Is(mergeErr, repo.ErrAncestorMerge) {
				if err := finish(r, m); err != nil {
					return err
				}
			}

			switch {
			case errors.Is(mergeErr, repo.ErrAncestorMerge):
				return mergeErr
			case errors.Is(mergeErr, repo.ErrFastForward):
				return mergeErr
			case errors.Is(mergeErr, repo.ErrNoChanges):
				return mergeErr
			case mergeErr != nil:
				return mergeErr
			}

			if result.HadConflict {
				fmt.Fprintln(cmd.OutOrStdout(), "Encountered a merge conflict.")
			}
			return nil
		},
	}
}
