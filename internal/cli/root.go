// Package cli implements the pathuri command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"lesiw.io/pathuri"
	"lesiw.io/pathuri/internal/config"
	"lesiw.io/pathuri/internal/log"
)

const longDesc = `Join path segments onto an absolute base path and print the
result as a URI.

A relative segment is appended after the base path's separator ('/' for Unix
paths, '\' for Windows paths). An absolute segment replaces everything before
it. Paths matching a rewrite rule are mapped to the rule's target; all others
become file URIs.`

// NewRootCmd returns the pathuri root command.
func NewRootCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name + " BASE [SEGMENT...]",
		Short:         "Convert absolute paths to URIs",
		Long:          longDesc,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	pf := cmd.PersistentFlags()
	pf.String("log_level", "warn",
		"Set the log level (debug, info, warn, error)")
	pf.String("log_format", "text",
		"Set the log format (text, logfmt, json)")
	pf.String("rules", "",
		"Read rewrite rules from a TOML or YAML file")
	pf.Bool("no-default-rules", false,
		"Do not apply the built-in rewrite rules")

	cmd.Flags().Bool("path", false,
		"Print the joined path instead of its URI")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewRulesCmd())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	rules, err := loadRules(cmd)
	if err != nil {
		return err
	}

	printPath, err := cmd.Flags().GetBool("path")
	if err != nil {
		return fmt.Errorf("invalid argument: %w", err)
	}

	p, err := pathuri.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid base path: %w", err)
	}
	for _, elem := range args[1:] {
		p.Push(elem)
		slog.Debug("pushed segment", "segment", elem, "path", p.String())
	}

	out := rules.URI(p)
	if printPath {
		out = p.String()
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err
}

// loadRules returns the rewrite rules selected by the command's flags.
func loadRules(cmd *cobra.Command) (pathuri.Rules, error) {
	flags := cmd.Flags()

	var merr error

	file, err := flags.GetString("rules")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	noDefaults, err := flags.GetBool("no-default-rules")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, fmt.Errorf("invalid argument: %w", merr)
	}

	var cfg *config.Config
	if file != "" {
		cfg, err = config.ReadFromFile(file)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded rewrite rules",
			"file", file, "rules", len(cfg.Rules))
	}

	return cfg.Effective(noDefaults), nil
}
