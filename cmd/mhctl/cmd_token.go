package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mindhealth/internal/config"
	"mindhealth/internal/service"
)

func newTokenCommand() *cobra.Command {
	var userID, email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a user token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}
			resp, err := service.NewAuthService(config.Load().JWTSecret).GenerateUserToken(userID, email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.Flags().StringVar(&email, "email", "", "Optional email claim")

	return cmd
}
