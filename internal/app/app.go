package app

import (
	"github.com/spf13/cobra"

	"github.com/Inversive-Labs/eloizer/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "eloizer",
		Short:         "Static analyzer for Solana smart contracts",
		Long:          "A static analysis tool for detecting security vulnerabilities and code quality issues in Solana/Anchor smart contracts written in Rust.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cli.AddCommands(root)
	return root
}
