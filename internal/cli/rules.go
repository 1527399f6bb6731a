package cli

import (
	"github.com/spf13/cobra"

	"lesiw.io/pathuri/internal/config"
)

// NewRulesCmd returns a command that prints the effective rewrite rules
// as TOML.
func NewRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rewrite rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := loadRules(cmd)
			if err != nil {
				return err
			}
			return config.Write(cmd.OutOrStdout(), rules)
		},
	}
}
