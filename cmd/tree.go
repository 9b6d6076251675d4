package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/acfkit/internal/catalog"
	"github.com/agentic-research/acfkit/internal/tree"
)

func newTreeCmd(opts *rootOptions) *cobra.Command {
	var showProblems bool
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show field groups grouped by theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := catalog.Load(cmd.Context(), opts.fs, opts.settings.ThemeIgnoreList)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if snap.Len() == 0 {
				fmt.Fprintln(out, "No ACF field groups found")
			} else if err := tree.Render(out, tree.Build(snap, opts.settings)); err != nil {
				return err
			}
			if showProblems {
				for _, p := range snap.Problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %v\n", p.Path, p.Err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showProblems, "problems", false, "List files that could not be read as field groups")
	return cmd
}
