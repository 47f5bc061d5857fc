package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Inversive-Labs/eloizer/internal/display"
	"github.com/Inversive-Labs/eloizer/internal/model"
	"github.com/Inversive-Labs/eloizer/internal/rules"
)

func newListRulesCmd(g *globals) *cobra.Command {
	var (
		severity string
		detailed bool
	)
	cmd := &cobra.Command{
		Use:   "list-rules",
		Short: "List all available detection rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := display.New(g.noColor, g.verbose, g.quiet)
			out := cmd.OutOrStdout()

			var filter *model.Severity
			if severity != "" {
				sev, err := model.ParseSeverity(severity)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s Unknown severity: %s\n", d.Err("✗"), severity)
					return err
				}
				filter = &sev
			}

			fmt.Fprintf(out, "\n%s\n\n", d.Step("📋 Available Detection Rules"))

			listing := rules.List(rules.NewCatalog().Rules(), filter)
			if listing.Total == 0 {
				fmt.Fprintf(out, "  %s No rules found\n", d.Warn("⚠"))
				return nil
			}

			for _, grp := range listing.Groups {
				st := d.SeverityStyle(grp.Severity)
				fmt.Fprintf(out, "%s %s (%d rules)\n\n", st.Icon, st.Sprintf("%s Severity", grp.Severity.Label()), len(grp.Rules))
				for _, r := range grp.Rules {
					fmt.Fprintf(out, "  • %s - %s\n", d.Heading(r.ID), r.Title)
					if detailed {
						fmt.Fprintf(out, "    %s\n\n", d.Dim(r.Description))
					}
				}
				fmt.Fprintln(out)
			}

			fmt.Fprintf(out, "Total: %d rules\n\n", listing.Total)
			return nil
		},
	}
	cmd.Flags().StringVarP(&severity, "severity", "s", "", "Filter by severity (high, medium, low, informational)")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Show detailed information")
	return cmd
}

func newRuleInfoCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "rule-info <rule-id>",
		Short: "Show information about a specific rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := display.New(g.noColor, g.verbose, g.quiet)
			out := cmd.OutOrStdout()

			r, ok := rules.NewCatalog().Find(args[0])
			if !ok {
				fmt.Fprintf(os.Stderr, "%s Rule not found: %s\n", d.Err("✗"), d.Warn(args[0]))
				fmt.Fprintf(os.Stderr, "\nUse %s to see all available rules\n\n", d.Step("eloizer list-rules"))
				return fmt.Errorf("rule not found: %s", args[0])
			}

			st := d.SeverityStyle(r.Severity)
			fmt.Fprintf(out, "\n%s\n\n", d.Step("📖 Rule Information"))
			fmt.Fprintf(out, "  %s %s\n", d.Heading("ID:"), r.ID)
			fmt.Fprintf(out, "  %s %s\n", d.Heading("Title:"), r.Title)
			fmt.Fprintf(out, "  %s %s %s\n", d.Heading("Severity:"), st.Icon, st.Sprint(r.Severity.Label()))
			fmt.Fprintf(out, "  %s %s\n\n", d.Heading("Type:"), r.Type)
			fmt.Fprintf(out, "  %s\n", d.Heading("Description:"))
			fmt.Fprintf(out, "  %s\n\n", r.Description)
			return nil
		},
	}
}
