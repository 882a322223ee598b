package main

import (
	"fmt"
	"os"

	"gitlet/pkg/config"
	"gitlet/pkg/repo"
	"gitlet/pkg/sign"
	"github.com/spf13/cobra"
)

func newSignCmd() *cobra.Command {
	var keyPath string
	cmd := &cobra.Command{
		Use:   "sign <commit>",
		Short: "Attach a detached SSH signature to a commit",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 1); err != nil {
				return err
			}
			resolved, err := r.Store.ResolvePrefix(args[0])
			if err != nil {
				return err
			}
			if resolved == "" {
				return repo.ErrNoSuchCommit
			}

			effectiveKeyPath := keyPath
			if effectiveKeyPath == "" {
				if cfg, err := config.Load(); err == nil {
					effectiveKeyPath = cfg.Sign.KeyPath
				}
			}

			signer, err := sign.LoadSigner(effectiveKeyPath)
			if err != nil {
				return err
			}
			sigLine, err := signer.SignCommit(resolved)
			if err != nil {
				return err
			}
			return os.WriteFile(sign.SidecarPath(r.GitletDir, resolved), []byte(sigLine), 0o644)
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "", "path to an SSH private key (default: ~/.ssh/id_ed25519 etc.)")
	return cmd
}

func newVerifySignatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-sig <commit>",
		Short: "Verify a commit's detached SSH signature",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := requireArgs(args, 1); err != nil {
				return err
			}
			resolved, err := r.Store.ResolvePrefix(args[0])
			if err != nil {
				return err
			}
			if resolved == "" {
				return repo.ErrNoSuchCommit
			}

			sigLine, err := os.ReadFile(sign.SidecarPath(r.GitletDir, resolved))
			if err != nil {
				return fmt.Errorf("verify-sig: no signature for %s: %w", resolved, err)
			}
			pub, err := sign.Verify(resolved, string(sigLine))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "good signature by %s\n", pub.Type())
			return nil
		},
	}
}
