package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/acfkit/internal/catalog"
	"github.com/agentic-research/acfkit/internal/commands"
	"github.com/agentic-research/acfkit/internal/mcpserver"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the field group tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat := catalog.New(opts.fs, opts.settings.ThemeIgnoreList)
			return mcpserver.New(commands.NewRunner(opts.fs), cat, opts.settings).ServeStdio()
		},
	}
}
