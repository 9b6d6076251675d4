package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/acfkit/internal/commands"
)

func newRekeyCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rekey",
		Short: "Regenerate ACF keys in a field group file",
	}
	cmd.AddCommand(newRekeyFieldCmd(opts), newRekeyGroupCmd(opts), newRekeyFieldsCmd(opts))
	return cmd
}

func newRekeyFieldCmd(opts *rootOptions) *cobra.Command {
	var (
		offset int
		refs   bool
	)
	cmd := &cobra.Command{
		Use:   "field <file>",
		Short: "Give the field object at a byte offset a new key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRekey(cmd, opts, args[0], func(r *commands.Runner, p string) (*commands.Result, error) {
				if refs {
					return r.GenerateFieldKeyWithReferences(p, offset)
				}
				return r.GenerateFieldKey(p, offset)
			})
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Byte offset inside the field object")
	cmd.Flags().BoolVar(&refs, "refs", false, "Also replace quoted references to the old key")
	_ = cmd.MarkFlagRequired("offset")
	return cmd
}

func newRekeyGroupCmd(opts *rootOptions) *cobra.Command {
	var rename bool
	cmd := &cobra.Command{
		Use:   "group <file>",
		Short: "Give the field group a new group key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRekey(cmd, opts, args[0], func(r *commands.Runner, p string) (*commands.Result, error) {
				return r.GenerateGroupKey(p, rename)
			})
		},
	}
	cmd.Flags().BoolVar(&rename, "rename", false, "Rename the file to <newKey>.json")
	return cmd
}

func newRekeyFieldsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <file>",
		Short: "Give every top-level field a new key and update references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRekey(cmd, opts, args[0], (*commands.Runner).RegenerateAllFieldKeys)
		},
	}
}

func runRekey(cmd *cobra.Command, opts *rootOptions, arg string, run func(*commands.Runner, string) (*commands.Result, error)) error {
	p, err := opts.rel(arg)
	if err != nil {
		return err
	}
	res, err := run(commands.NewRunner(opts.fs), p)
	if res != nil {
		fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
		if len(res.Changes) > 1 {
			for _, c := range res.Changes {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s → %s\n", c.OldKey, c.NewKey)
			}
		}
	}
	return err
}
