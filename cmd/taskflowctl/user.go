package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var email, name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user account and print its id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if email == "" || !strings.Contains(email, "@") {
				return fmt.Errorf("a valid --email is required")
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

			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("generate id: %w", err)
			}
			now := time.Now().UTC()

			u, err := userrepo.New(pool).Create(ctx, domain.User{
				ID:        id,
				Email:     email,
				Name:      strings.TrimSpace(name),
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Println(u.ID)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "email address (stored lowercased)")
	create.Flags().StringVar(&name, "name", "", "display name")

	cmd.AddCommand(create)
	return cmd
}
