// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/migrations"
)

type dbFlags struct {
	dsn    string
	driver string
}

// resolve overlays the command line flags on the environment settings.
func (f dbFlags) resolve() (config.DB, error) {
	storage, err := config.GetStorageConfig()
	if err != nil {
		return config.DB{}, err
	}

	db := storage.DB
	if f.dsn != "" {
		db.DSN = f.dsn
	}
	if f.driver != "" {
		db.Driver = f.driver
	}
	if db.DSN == "" {
		return config.DB{}, fmt.Errorf("%w: database DSN is required", config.ErrInvalidStorageConfigs)
	}
	return db, nil
}

func newRootCmd(out io.Writer, log *logger.Logger) *cobra.Command {
	flags := &dbFlags{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the stash journal database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&flags.dsn, "dsn", "", "database connection string")
	root.PersistentFlags().StringVar(&flags.driver, "driver", "", "database driver: pgx or sqlite3")

	root.AddCommand(
		newUpCmd(flags, log),
		newDownCmd(flags, log),
		newStatusCmd(flags, log),
	)
	return root
}

// withDB opens the configured database for the duration of fn.
func withDB(cmd *cobra.Command, flags *dbFlags, log *logger.Logger, fn func(db *store.DB) error) error {
	cfg, err := flags.resolve()
	if err != nil {
		return err
	}

	db, err := store.NewConnect(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db)
}

func newUpCmd(flags *dbFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, flags, log, func(db *store.DB) error {
				if err := db.Migrate(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}
}

func newDownCmd(flags *dbFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, flags, log, func(db *store.DB) error {
				result, err := migrations.Rollback(cmd.Context(), db.DB, string(db.Dialect()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reverted %d %s\n", result.Source.Version, result.Source.Path)
				return nil
			})
		},
	}
}

func newStatusCmd(flags *dbFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, flags, log, func(db *store.DB) error {
				statuses, err := migrations.Status(cmd.Context(), db.DB, string(db.Dialect()))
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
				for _, s := range statuses {
					appliedAt := "-"
					if !s.AppliedAt.IsZero() {
						appliedAt = s.AppliedAt.UTC().Format(time.RFC3339)
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, appliedAt, s.Source.Path)
				}
				return w.Flush()
			})
		},
	}
}
