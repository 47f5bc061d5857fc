package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Inversive-Labs/eloizer/internal/display"
	"github.com/Inversive-Labs/eloizer/internal/engine"
	"github.com/Inversive-Labs/eloizer/internal/model"
	"github.com/Inversive-Labs/eloizer/internal/options"
	"github.com/Inversive-Labs/eloizer/internal/parser"
	"github.com/Inversive-Labs/eloizer/internal/report"
)

// Analyzer is the analysis engine collaborator. It is constructed with the
// run's options and honors the ignore sets; the returned stats must agree
// with the returned findings.
type Analyzer interface {
	AnalyzeFiles(files []*parser.SourceFile) (*model.AnalysisResult, error)
}

// ReportWriter persists the document report for one run.
type ReportWriter interface {
	SaveMarkdownReport(path string) error
}

// RunConfig wires one analyze run. The collaborator hooks default to the
// built-in implementations; tests replace them with stubs.
type RunConfig struct {
	Params options.Params

	Display *display.Context
	Log     *zap.SugaredLogger
	Out     io.Writer

	Discover    func(path string) ([]*parser.SourceFile, error)
	NewAnalyzer func(opts model.AnalysisOptions) Analyzer
	NewReport   func(findings []model.Finding, project string) ReportWriter

	// PresentFindings overrides the console detail view (the interactive
	// browser hooks in here).
	PresentFindings func(s report.Summary, verbose bool) error
}

func (rc *RunConfig) defaults() {
	if rc.Out == nil {
		rc.Out = os.Stdout
	}
	if rc.Log == nil {
		rc.Log = zap.NewNop().Sugar()
	}
	if rc.Display == nil {
		rc.Display = display.New(true, false, false)
	}
	if rc.Discover == nil {
		rc.Discover = parser.ProcessDirectory
	}
	if rc.NewAnalyzer == nil {
		rc.NewAnalyzer = func(opts model.AnalysisOptions) Analyzer { return engine.New(opts) }
	}
	if rc.NewReport == nil {
		rc.NewReport = func(findings []model.Finding, project string) ReportWriter {
			return report.NewGenerator(findings, project)
		}
	}
}

// Run drives one analysis end to end: validate the path, discover and parse
// sources, optionally dump ASTs, analyze once, aggregate, and report to the
// console or a markdown document. Every failure aborts with a distinct
// error; zero files and zero findings complete normally.
func Run(rc RunConfig) error {
	rc.defaults()
	d := rc.Display

	path := rc.Params.Path
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s Path does not exist: %s\n", d.Err("✗"), d.Warn(path))
		return fmt.Errorf("path %s does not exist", path)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "%s Path is not a directory: %s\n", d.Err("✗"), d.Warn(path))
		return fmt.Errorf("path %s is not a directory", path)
	}

	if !d.Quiet {
		fmt.Fprintf(rc.Out, "\n%s Analyzing directory: %s\n\n", d.Step("→"), path)
	}

	start := time.Now()

	sp := d.NewSpinner("Scanning for Rust files...")
	files, err := rc.Discover(path)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "\n%s No Rust files found in %s\n", d.Warn("⚠"), path)
		return nil
	}

	if !d.Quiet {
		fmt.Fprintf(rc.Out, "%s Found %s Rust file(s) to analyze\n\n", d.OK("✓"), d.OK(len(files)))
	}

	if rc.Params.GenerateAST {
		if err := dumpASTs(rc, files); err != nil {
			return err
		}
	}

	opts, err := options.Resolve(rc.Params, rc.Log)
	if err != nil {
		return err
	}

	if !d.Quiet {
		fmt.Fprintf(rc.Out, "🔍 Running security analysis...\n\n")
	}

	sp = d.NewSpinner("Analyzing code for vulnerabilities...")
	result, err := rc.NewAnalyzer(opts).AnalyzeFiles(files)
	elapsed := time.Since(start)
	sp.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%s Analysis failed: %s\n", d.Err("✗"), d.Err(err.Error()))
		return fmt.Errorf("analysis failed: %w", err)
	}

	if !d.Quiet {
		fmt.Fprintf(rc.Out, "%s Analysis completed in %.2fs\n\n", d.OK("✓"), elapsed.Seconds())
	}

	summary := report.Aggregate(result)
	if !summary.Consistent() {
		rc.Log.Warnf("engine stats disagree with aggregated findings (total %d)", summary.Total)
	}

	console := &report.Console{Out: rc.Out, D: d}
	if !d.Quiet {
		console.PrintSummary(summary)
	}

	if rc.Params.Output != "" {
		final := report.NormalizeMarkdownPath(rc.Params.Output)
		if err := rc.NewReport(result.Findings, path).SaveMarkdownReport(final); err != nil {
			fmt.Fprintf(os.Stderr, "\n%s Failed to save report: %s\n", d.Err("✗"), d.Err(err.Error()))
			return err
		}
		if !d.Quiet {
			fmt.Fprintf(rc.Out, "\n📄 Report saved to: %s\n", d.OK(final))
		}
	} else if !d.Quiet {
		if rc.PresentFindings != nil {
			if err := rc.PresentFindings(summary, d.Verbose); err != nil {
				return err
			}
		} else {
			console.PrintFindings(summary, d.Verbose)
		}
	}

	if !d.Quiet {
		fmt.Fprintf(rc.Out, "\n%s Analysis completed successfully!\n\n", d.OK("✓"))
	}
	return nil
}

// dumpASTs writes a <file>.ast.json next to each parsed source. Any write
// failure is fatal to the run.
func dumpASTs(rc RunConfig, files []*parser.SourceFile) error {
	d := rc.Display
	if !d.Quiet {
		fmt.Fprintf(rc.Out, "%s Generating AST JSON files...\n\n", d.Step("→"))
	}
	for _, sf := range files {
		data, err := sf.ASTJSON()
		if err != nil {
			return fmt.Errorf("failed to serialize AST for %s: %w", sf.Path, err)
		}
		dest := parser.ASTPath(sf.Path)
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("failed to write AST dump %s: %w", dest, err)
		}
		if !d.Quiet {
			fmt.Fprintf(rc.Out, "  %s %s\n", d.OK("✓"), d.Dim(dest))
		}
	}
	if !d.Quiet {
		fmt.Fprintln(rc.Out)
	}
	return nil
}
