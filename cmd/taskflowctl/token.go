package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/taskflow-backend/internal/auth"
	"github.com/heartmarshall/taskflow-backend/internal/config"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue access tokens for local development and testing",
	}

	var userFlag string
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Print a signed access token for an existing user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("--user must be a UUID: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			if _, err := userrepo.New(pool).GetByID(ctx, userID); err != nil {
				return fmt.Errorf("look up user: %w", err)
			}

			tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clockwork.NewRealClock())
			token, err := tokens.GenerateAccessToken(userID)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			fmt.Println(token)
			return nil
		},
	}
	issue.Flags().StringVar(&userFlag, "user", "", "user id")
	_ = issue.MarkFlagRequired("user")

	cmd.AddCommand(issue)
	return cmd
}
