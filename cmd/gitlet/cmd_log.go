package main

import (
	"fmt"

	"gitlet/pkg/object"
	"gitlet/pkg/repo"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const logDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Print the first-parent commit history from head",
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
			entries, err := repo.Log(r, m.Head)
			if err != nil {
				return err
			}
			printLog(cmd, entries)
			return nil
		},
	}
}

func newGlobalLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "global-log",
		Short: "Print every commit ever made, in arbitrary order",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 0); err != nil {
				return err
			}
			entries, err := repo.GlobalLog(r)
			if err != nil {
				return err
			}
			printLog(cmd, entries)
			return nil
		},
	}
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <message>",
		Short: "Print the hashes of every commit with the given message",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 1); err != nil {
				return err
			}
			hashes, err := repo.Find(r, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, h := range hashes {
				fmt.Fprintln(out, h)
			}
			return nil
		},
	}
}

// printLog renders the §6 log-record format for each entry.
func printLog(cmd *cobra.Command, entries []repo.LogEntry) {
	out := cmd.OutOrStdout()
	hashColor := color.New(color.FgYellow)
	for _, e := range entries {
		fmt.Fprintln(out, "===")
		fmt.Fprintf(out, "commit %s\n", hashColor.Sprint(string(e.Hash)))
		if e.Commit.IsMerge() {
			fmt.Fprintf(out, "Merge: %s %s\n", shortHash(e.Commit.Parents[0]), shortHash(e.Commit.Parents[1]))
		}
		fmt.Fprintf(out, "Date: %s\n", e.Commit.Timestamp().Format(logDateLayout))
		fmt.Fprintln(out, e.Commit.Message)
		fmt.Fprintln(out)
	}
}

func shortHash(h object.Hash) string {
	s := string(h)
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
