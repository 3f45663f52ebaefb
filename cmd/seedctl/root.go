package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"postboard/internal/config"
	"postboard/internal/infra/adapter/persistence/memory"
	"postboard/internal/observability/logging"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "seedctl",
		Short: "Check and export postboard seed data",
		Long: `seedctl loads a YAML seed file the same way the API server does at startup.
Without a file argument the embedded demo dataset is used.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if verbose {
				level = "debug"
			}
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), level))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newValidateCmd(), newExportCmd())
	return root
}

// loadSeeded loads the seed at path (embedded when empty) into a fresh store,
// applying every referential check the server applies.
func loadSeeded(path string) (*memory.Store, error) {
	seed, err := config.LoadSeed(path)
	if err != nil {
		return nil, err
	}
	store := memory.New()
	if err := store.Load(seed.Entities()); err != nil {
		return nil, err
	}
	return store, nil
}

func seedArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
