package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/notice-board/internal/config"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/internal/service"
)

func (c *cli) newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts directly in the store",
		Long: `Administrator accounts are provisioned out-of-band. These commands
connect to the database configured for the API server (DB_* environment
variables or .env) rather than going through the HTTP API.`,
	}
	cmd.AddCommand(c.newAdminCreateCmd())
	return cmd
}

func (c *cli) newAdminCreateCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a new administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if name == "" {
				if name, err = c.readLine("Name: "); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = c.readLine("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = c.readSecret("Password: "); err != nil {
					return err
				}
				confirm, err := c.readSecret("Confirm password: ")
				if err != nil {
					return err
				}
				if password != confirm {
					return fmt.Errorf("passwords do not match")
				}
			}

			cfg, store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
				AdminRepo: store.Admins,
				Logger:    c.logger,
			})
			admin, err := authService.CreateAdmin(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Administrator %s <%s> created with id %d.\n", admin.Name, admin.Email, admin.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func (c *cli) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context(), c.logger); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Migrations applied (%s).\n", store.Driver())
			return nil
		},
	}
}

func (c *cli) openStore(ctx context.Context) (*config.Config, *repository.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	store, err := repository.OpenStore(ctx, cfg.Database, c.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Database.Driver, err)
	}
	return cfg, store, nil
}
