package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agentic-research/acfkit/api"
	"github.com/agentic-research/acfkit/internal/config"
)

// rootOptions is the state shared by every subcommand of one invocation.
type rootOptions struct {
	workspace  string
	configPath string

	root     string // absolute workspace directory
	fs       billy.Filesystem
	settings api.Settings
}

// NewRootCmd builds the acfkit command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "acfkit",
		Short:        "Browse ACF field groups and regenerate their keys",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace directory (default $"+config.EnvWorkspace+" or the current directory)")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Settings file, .json or .hcl (default $"+config.EnvConfig+")")

	rootCmd.AddCommand(
		newTreeCmd(opts),
		newDecorateCmd(opts),
		newRekeyCmd(opts),
		newCollisionsCmd(opts),
		newIndexCmd(opts),
		newOpenCmd(opts),
		newMCPCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	_ = godotenv.Load()

	if o.workspace == "" {
		o.workspace = os.Getenv(config.EnvWorkspace)
	}
	if o.workspace == "" {
		o.workspace = "."
	}
	root, err := filepath.Abs(o.workspace)
	if err != nil {
		return fmt.Errorf("resolve workspace: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace %s is not a directory", root)
	}
	o.root = root
	o.fs = osfs.New(root)

	if o.configPath == "" {
		o.configPath = os.Getenv(config.EnvConfig)
	}
	cfgFS, cfgName := o.fs, ""
	if o.configPath != "" {
		abs, err := filepath.Abs(o.configPath)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		cfgFS, cfgName = osfs.New(filepath.Dir(abs)), filepath.Base(abs)
	}
	o.settings, err = config.Load(cfgFS, cfgName)
	if err != nil {
		return err
	}
	config.ApplyEnv(&o.settings)
	for _, w := range config.Check(o.settings) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return nil
}

// rel converts a path given on the command line to a workspace-relative one.
func (o *rootOptions) rel(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(p) {
		// Relative arguments are tried against the workspace first.
		if _, err := os.Stat(filepath.Join(o.root, p)); err == nil {
			abs = filepath.Join(o.root, p)
		}
	}
	r, err := filepath.Rel(o.root, abs)
	if err != nil {
		return "", err
	}
	if r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", errors.New(p + " is outside the workspace " + o.root)
	}
	return filepath.ToSlash(r), nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
