package main

import (
	"errors"

	"github.com/spf13/cobra"

	"mindhealth/internal/app"
	"mindhealth/internal/service"
)

func newStatusCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Compute a user's dashboard from storage and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}

			ctx := cmd.Context()
			stores, cfg, err := openStores(ctx)
			if err != nil {
				return err
			}
			defer stores.Close(ctx)

			d, err := service.NewStatusService(stores.Assessments, nil, app.Engine(cfg)).Dashboard(ctx, userID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), d)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")

	return cmd
}
