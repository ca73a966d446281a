package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
	"github.com/AshuKumar2005/CityAcces/internal/core/service"
	"github.com/AshuKumar2005/CityAcces/internal/infrastructure/db/postgres"
	"github.com/AshuKumar2005/CityAcces/internal/infrastructure/storage"
	"github.com/AshuKumar2005/CityAcces/internal/pkg/config"
	"github.com/AshuKumar2005/CityAcces/pkg/logger"
)

// migrator is the slice of the postgres package the migrate commands use.
type migrator struct {
	up      func(dsn string) error
	down    func(dsn string, steps int) error
	version func(dsn string) (uint, bool, error)
}

var pgMigrator = migrator{
	up:      postgres.MigrateUp,
	down:    postgres.MigrateDown,
	version: postgres.MigrationVersion,
}

// adminCreator registers administrator accounts.
type adminCreator interface {
	CreateAdmin(ctx context.Context, in ports.SignUpInput) (*domain.Profile, error)
}

// openAdminCreator connects the configured store. The returned func releases it.
var openAdminCreator = func(ctx context.Context) (adminCreator, func(), error) {
	cfg := config.LoadWithoutSecrets()
	backend, err := storage.OpenStore(ctx, cfg, logger.Component("storage"))
	if err != nil {
		return nil, nil, err
	}
	repos := backend.Repos
	svc := service.NewSessionService(repos.Identities, repos.Profiles, nil, cfg.JWTSecret, cfg.TokenTTL, logger.Component("portalctl"))
	return svc, func() { _ = backend.Close(context.Background()) }, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portalctl",
		Short:        "Operator tooling for the City Access portal",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(pgMigrator), newCreateAdminCmd())
	return root
}

func newMigrateCmd(m migrator) *cobra.Command {
	var dsn string

	resolveDSN := func() string {
		if dsn != "" {
			return dsn
		}
		return config.LoadWithoutSecrets().Postgres.URL
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}
	cmd.PersistentFlags().StringVar(&dsn, "database-url", "", "PostgreSQL URL (defaults to POSTGRES_URL)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := m.up(resolveDSN()); err != nil {
					return err
				}
				return printVersion(cmd.OutOrStdout(), m, resolveDSN())
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (one step by default)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n <= 0 {
						return fmt.Errorf("steps must be a positive integer, got %q", args[0])
					}
					steps = n
				}
				if err := m.down(resolveDSN(), steps); err != nil {
					return err
				}
				return printVersion(cmd.OutOrStdout(), m, resolveDSN())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printVersion(cmd.OutOrStdout(), m, resolveDSN())
			},
		},
	)
	return cmd
}

func printVersion(w io.Writer, m migrator, dsn string) error {
	version, dirty, err := m.version(dsn)
	if err != nil {
		return err
	}
	if version == 0 {
		_, err = fmt.Fprintln(w, "schema version: none")
		return err
	}
	_, err = fmt.Fprintf(w, "schema version: %d (dirty=%t)\n", version, dirty)
	return err
}

func newCreateAdminCmd() *cobra.Command {
	var in ports.SignUpInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creator, release, err := openAdminCreator(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			profile, err := creator.CreateAdmin(cmd.Context(), in)
			if errors.Is(err, domain.ErrEmailTaken) {
				return fmt.Errorf("an account for %s already exists", in.Email)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", profile.Email, profile.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "admin e-mail")
	cmd.Flags().StringVar(&in.Password, "password", "", "admin password")
	cmd.Flags().StringVar(&in.FullName, "name", "", "admin full name")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "admin phone (optional)")
	for _, name := range []string{"email", "password", "name"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
