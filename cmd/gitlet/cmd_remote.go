package main

import (
	"errors"
	"fmt"

	"gitlet/pkg/repo"
	"github.com/spf13/cobra"
)

func newAddRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-remote <name> <path>",
		Short: "Register a remote repository",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 2); err != nil {
				return err
			}
			m, err := r.LoadManagement()
			if err != nil {
				return err
			}
			if err := repo.AddRemote(m, args[0], args[1]); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}

func newRmRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-remote <name>",
		Short: "Unregister a remote repository",
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
			if err := repo.RmRemote(m, args[0]); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <remote> <branch>",
		Short: "Push the current branch's history to a remote",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 2); err != nil {
				return err
			}
			m, err := r.LoadManagement()
			if err != nil {
				return err
			}
			if err := repo.Push(r, m, args[0], args[1]); err != nil {
				return err
			}
			return nil
		},
	}
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <remote> <branch>",
		Short: "Fetch a remote branch into a local remote-tracking branch",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 2); err != nil {
				return err
			}
			m, err := r.LoadManagement()
			if err != nil {
				return err
			}
			if err := repo.Fetch(r, m, args[0], args[1]); err != nil {
				return err
			}
			return finish(r, m)
		},
	}
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <remote> <branch>",
		Short: "Fetch then merge a remote branch",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 2); err != nil {
				return err
			}
			m, err := r.LoadManagement()
			if err != nil {
				return err
			}

			result, mergeErr := repo.Pull(r, m, args[0], args[1])

			if !errors.Is(mergeErr, repo.ErrAncestorMerge) {
				if err := finish(r, m); err != nil {
					return err
				}
			}

			switch {
			case errors.Is(mergeErr, repo.ErrAncestorMerge),
				errors.Is(mergeErr, repo.ErrFastForward),
				errors.Is(mergeErr, repo.ErrNoChanges):
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
