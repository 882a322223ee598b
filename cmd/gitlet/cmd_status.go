package main

import (
	"fmt"

	"gitlet/pkg/repo"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show staged, removed, and modified files, and known branches",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 0); err != nil {
				return err
			}
			m, err := r.LoadManagement()
			if err != nil {
				return err
			}
			st, err := repo.BuildStatus(r, m)
			if err != nil {
				return err
			}
			printStatus(cmd, st)
			return nil
		},
	}
}

func printStatus(cmd *cobra.Command, st *repo.Status) {
	out := cmd.OutOrStdout()
	current := color.New(color.FgGreen, color.Bold)

	fmt.Fprintln(out, "=== Branches ===")
	for _, b := range st.Branches {
		if b == st.CurrentBranch {
			fmt.Fprintln(out, current.Sprintf("*%s", b))
		} else {
			fmt.Fprintln(out, b)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Staged Files ===")
	for _, p := range st.Staged {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Removed Files ===")
	for _, p := range st.Removed {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Modifications Not Staged For Commit ===")
	for _, e := range st.ModifiedNotStaged {
		fmt.Fprintf(out, "%s (%s)\n", e.Path, e.Kind)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Untracked Files ===")
	for _, p := range st.Untracked {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintln(out)
}
