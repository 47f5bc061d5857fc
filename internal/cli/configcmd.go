package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Inversive-Labs/eloizer/internal/config"
	"github.com/Inversive-Labs/eloizer/internal/display"
	"github.com/Inversive-Labs/eloizer/internal/options"
)

func newConfigCmd(g *globals) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Run analysis with a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := display.New(g.noColor, g.verbose, g.quiet)

			cfg, err := config.Load(configPath)
			if err != nil {
				if errors.Is(err, config.ErrNotFound) {
					fmt.Fprintf(os.Stderr, "%s Configuration file not found: %s\n", d.Err("✗"), d.Warn(configPath))
					fmt.Fprintf(os.Stderr, "\nCreate one with: %s\n\n", d.Step("eloizer init"))
					return err
				}
				fmt.Fprintf(os.Stderr, "%s %s\n", d.Err("✗"), err)
				return err
			}

			p := options.FromConfig(cfg, g.verbose, g.quiet, g.noColor)
			if !p.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s Using configuration: %s\n", d.Step("⚙"), configPath)
			}
			return runAnalysis(cmd, p, false)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "eloizer.yaml", "Path to configuration file")
	return cmd
}
