package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	dbpkg "github.com/benedict2310/robotsctl/internal/db"
	"github.com/benedict2310/robotsctl/internal/names"
	"github.com/benedict2310/robotsctl/internal/output"
	"github.com/spf13/cobra"
)

type metadataFlags struct {
	dbPath string
}

// open opens the database read-write and applies pending migrations.
func (f *metadataFlags) open(ctx context.Context, cmd *cobra.Command) (*sql.DB, error) {
	if strings.TrimSpace(f.dbPath) == "" {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return nil, exitCodeError(exitUsage, fmt.Errorf("required flag(s) \"db\" not set"))
	}
	db, err := dbpkg.Open(dbpkg.DefaultOptions(f.dbPath))
	if err != nil {
		return nil, err
	}
	if _, err := dbpkg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func newMetadataCmd(root *rootFlags) *cobra.Command {
	flags := &metadataFlags{}
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Manage site metadata stored in a SQLite database",
	}
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path")

	cmd.AddCommand(newMetadataSetCmd(flags, root))
	cmd.AddCommand(newMetadataGetCmd(flags))
	cmd.AddCommand(newMetadataListCmd(flags))
	cmd.AddCommand(newMetadataDeleteCmd(flags))
	return cmd
}

func newMetadataSetCmd(flags *metadataFlags, root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a metadata value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := names.ValidateMetadataKey(args[0]); err != nil {
				return exitCodeError(exitUsage, err)
			}
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}
			db, err := flags.open(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := dbpkg.NewQueries(db).UpsertSiteMetadata(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			logger.Info("site metadata updated", "db", flags.dbPath, "key", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
			return nil
		},
	}
}

func newMetadataGetCmd(flags *metadataFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a metadata value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := flags.open(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			row, err := dbpkg.NewQueries(db).GetSiteMetadata(cmd.Context(), args[0])
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("metadata key %q not found", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), row.Value)
			return nil
		},
	}
}

type metadataEntry struct {
	Key       string `json:"key" yaml:"key"`
	Value     string `json:"value" yaml:"value"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
}

type metadataList []metadataEntry

func (l metadataList) Table() ([]string, [][]string) {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		value := e.Value
		rows = append(rows, []string{e.Key, output.Cell(output.OrNone(&value), 60), e.UpdatedAt})
	}
	return []string{"KEY", "VALUE", "UPDATED"}, rows
}

func newMetadataListCmd(flags *metadataFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List metadata values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return exitCodeError(exitUsage, err)
			}
			db, err := flags.open(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := dbpkg.NewQueries(db).ListSiteMetadata(cmd.Context())
			if err != nil {
				return err
			}

			entries := make(metadataList, 0, len(rows))
			for _, row := range rows {
				entries = append(entries, metadataEntry{Key: row.Key, Value: row.Value, UpdatedAt: row.UpdatedAt})
			}
			return output.Write(cmd.OutOrStdout(), outFormat, entries)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table|json|yaml)")

	return cmd
}

func newMetadataDeleteCmd(flags *metadataFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: "Remove a metadata value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := flags.open(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			deleted, err := dbpkg.NewQueries(db).DeleteSiteMetadata(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("metadata key %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
