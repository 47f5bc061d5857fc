package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Inversive-Labs/eloizer/internal/display"
	"github.com/Inversive-Labs/eloizer/internal/logging"
	"github.com/Inversive-Labs/eloizer/internal/options"
	"github.com/Inversive-Labs/eloizer/internal/pipeline"
	"github.com/Inversive-Labs/eloizer/internal/tui"
)

// globals are the root-level persistent flags shared by every subcommand.
type globals struct {
	noColor bool
	verbose bool
	quiet   bool
}

func AddCommands(root *cobra.Command) {
	g := &globals{}
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose output")
	root.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "Quiet mode (errors only)")

	root.AddCommand(newAnalyzeCmd(g))
	root.AddCommand(newListRulesCmd(g))
	root.AddCommand(newRuleInfoCmd(g))
	root.AddCommand(newInitCmd())
	root.AddCommand(newConfigCmd(g))
}

const banner = `
███████╗██╗      ██████╗ ██╗███████╗███████╗██████╗
██╔════╝██║     ██╔═══██╗██║╚══███╔╝██╔════╝██╔══██╗
█████╗  ██║     ██║   ██║██║  ███╔╝ █████╗  ██████╔╝
██╔══╝  ██║     ██║   ██║██║ ███╔╝  ██╔══╝  ██╔══██╗
███████╗███████╗╚██████╔╝██║███████╗███████╗██║  ██║
╚══════╝╚══════╝ ╚═════╝ ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝
`

// runAnalysis wires one resolved parameter set into the pipeline.
func runAnalysis(cmd *cobra.Command, p options.Params, useTUI bool) error {
	log := logging.New(p.Verbose, p.Quiet)
	defer func() { _ = log.Sync() }()

	d := display.New(p.NoColor, p.Verbose, p.Quiet)
	if !d.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), d.Step(banner))
	}

	rc := pipeline.RunConfig{
		Params:  p,
		Display: d,
		Log:     log,
		Out:     cmd.OutOrStdout(),
	}
	if useTUI {
		rc.PresentFindings = tui.Browse
	}
	return pipeline.Run(rc)
}
