package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Inversive-Labs/eloizer/internal/config"
)

func newInitCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new analysis configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration template written to: %s\n", output)
			fmt.Fprintf(cmd.OutOrStdout(), "  Edit it and run: eloizer config -c %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "eloizer.yaml", "Output path for config file")
	return cmd
}
