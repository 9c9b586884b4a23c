package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/boards-backend/internal/auth"
)

// tokenCmd mints an actor token the way the host application would, for
// local testing against a running server.
func tokenCmd(load configLoader) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}
			cfg, err := load()
			if err != nil {
				return err
			}

			token, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL).Issue(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (UUID) to put in the token subject")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
