package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"mindhealth/internal/app"
	"mindhealth/internal/config"
	"mindhealth/internal/observability"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mhctl",
		Short: "mhctl - operator tool for the mindhealth status API",
		Long: `mhctl manages the data behind the mindhealth status API.

It imports the disorders catalogue and national statistics, seeds demo
assessments, issues user tokens and computes a user's dashboard offline.
Storage is selected with the same environment variables as the server.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := "warn"
		if *debugLogging {
			level = "debug"
		}
		observability.Configure(cmd.ErrOrStderr(), level)
	}

	cmd.AddCommand(newImportCommand())
	cmd.AddCommand(newSeedCommand())
	cmd.AddCommand(newTokenCommand())
	cmd.AddCommand(newStatusCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

func openStores(ctx context.Context) (*app.Stores, *config.Config, error) {
	cfg := config.Load()
	stores, err := app.OpenStores(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return stores, cfg, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
