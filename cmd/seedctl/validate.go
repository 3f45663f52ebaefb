package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Verify that a seed file loads cleanly",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := seedArg(args)
			slog.Debug("validating seed", slog.String("path", path))

			store, err := loadSeeded(path)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			accounts, posts, comments := store.Counts()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d accounts, %d posts, %d comments\n", accounts, posts, comments)
			return nil
		},
	}
}
