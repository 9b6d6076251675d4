package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/acfkit/internal/session"
)

func newOpenCmd(opts *rootOptions) *cobra.Command {
	var (
		hold   time.Duration
		editor string
	)
	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open a field group without revealing it in the explorer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := opts.rel(args[0])
			if err != nil {
				return err
			}
			opener := session.DefaultOpener()
			if editor != "" {
				opener.Name = editor
			}
			s := session.New(session.NewFileSettings(opts.fs), opener, hold)
			defer s.Close()

			if err := s.OpenQuiet(cmd.Context(), filepath.Join(opts.root, rel)); err != nil {
				return fmt.Errorf("open %s: %w", rel, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened ACF file: %s\n", filepath.Base(rel))

			select {
			case <-cmd.Context().Done():
			case <-time.After(hold):
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&hold, "hold", session.DefaultRestoreDelay, "How long auto-reveal stays disabled")
	cmd.Flags().StringVar(&editor, "editor", "", "Editor command (default code)")
	return cmd
}
