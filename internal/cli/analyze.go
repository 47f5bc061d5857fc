package cli

import (
	"github.com/spf13/cobra"

	"github.com/Inversive-Labs/eloizer/internal/options"
)

func newAnalyzeCmd(g *globals) *cobra.Command {
	var (
		path        string
		templates   string
		output      string
		ast         bool
		ignore      string
		ignoreRules string
		useTUI      bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze Solana smart contracts for vulnerabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := options.Params{
				Path:             path,
				TemplatesPath:    templates,
				Output:           output,
				GenerateAST:      ast,
				IgnoreSeverities: ignore,
				IgnoreRules:      ignoreRules,
				Verbose:          g.verbose,
				Quiet:            g.quiet,
				NoColor:          g.noColor,
			}
			return runAnalysis(cmd, p, useTUI)
		},
	}
	cmd.Flags().StringVarP(&path, "path", "p", "", "Path to Solana project directory")
	cmd.Flags().StringVarP(&templates, "templates", "t", "", "Custom templates path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output report file path (.md)")
	cmd.Flags().BoolVar(&ast, "ast", false, "Generate AST JSON files next to each source file")
	cmd.Flags().StringVarP(&ignore, "ignore", "i", "", "Severities to ignore (comma-separated: low,medium,high,informational)")
	cmd.Flags().StringVar(&ignoreRules, "ignore-rules", "", "Specific rule IDs to ignore (comma-separated)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Browse findings interactively")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
