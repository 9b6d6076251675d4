package cmd

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/acfkit/internal/catalog"
	"github.com/agentic-research/acfkit/internal/keyindex"
)

func newCollisionsCmd(opts *rootOptions) *cobra.Command {
	var hideShadowing bool
	cmd := &cobra.Command{
		Use:   "collisions",
		Short: "List ACF keys declared by more than one file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := catalog.Load(cmd.Context(), opts.fs, opts.settings.ThemeIgnoreList)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			for _, c := range keyindex.Build(snap).Collisions() {
				if hideShadowing && c.Shadowing {
					continue
				}
				n++
				kind := "duplicate"
				if c.Shadowing {
					kind = "override"
				}
				fmt.Fprintf(out, "%s (%s)\n", c.Key, kind)
				for _, f := range c.Files {
					fmt.Fprintf(out, "  %s\n", f.Path)
				}
			}
			if n == 0 {
				fmt.Fprintln(out, "No key collisions")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hideShadowing, "duplicates-only", false, "Hide keys shared only by child-theme overrides")
	return cmd
}

func newIndexCmd(opts *rootOptions) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Export every field group key to a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			snap, err := catalog.Load(cmd.Context(), opts.fs, opts.settings.ThemeIgnoreList)
			if err != nil {
				return err
			}
			idx := keyindex.Build(snap)
			if err := keyindex.WriteSQLite(dbPath, idx); err != nil {
				return err
			}

			db, err := sql.Open("sqlite", dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			collisions, err := keyindex.QueryCollisions(db)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d keys from %d files into %s (%d collisions) in %v.\n",
				idx.Len(), len(idx.Files()), dbPath, len(collisions), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "acf-keys.db", "Output database path")
	return cmd
}
