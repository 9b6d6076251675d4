package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/acfkit/internal/decorate"
)

func newDecorateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decorate <file>...",
		Short: "Print the explorer badge and tooltip of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decorate.NewProvider(opts.fs, len(args))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				rel, err := opts.rel(arg)
				if err != nil {
					return err
				}
				if d := p.Decorate(rel); d != nil {
					fmt.Fprintf(out, "%s\t%s %s\n", rel, d.Badge, d.Tooltip)
				} else {
					fmt.Fprintf(out, "%s\t-\n", rel)
				}
			}
			return nil
		},
	}
}
