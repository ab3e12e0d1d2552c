// sarifhtml converts SARIF static-analysis logs into standalone HTML
// reports.
//
// Usage:
//
//	sarifhtml results.sarif
//	sarifhtml results.sarif report.html
//	golangci-lint run --output.sarif.path=results.sarif ./... && sarifhtml results.sarif
//
// The report is a single self-contained HTML file: summary cards,
// findings grouped by severity, tool notifications, and a per-file
// issue table. With one argument the output lands in the current
// directory as <input stem>_report.html.
package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoosis/sarifhtml/internal/config"
	"github.com/dkoosis/sarifhtml/internal/console"
	"github.com/dkoosis/sarifhtml/internal/detect"
	"github.com/dkoosis/sarifhtml/internal/version"
	"github.com/dkoosis/sarifhtml/pkg/render"
	"github.com/dkoosis/sarifhtml/pkg/report"
	"github.com/dkoosis/sarifhtml/pkg/sarif"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		themeFlag   string
		noColorFlag bool
		summaryFlag bool
	)

	cmd := &cobra.Command{
		Use:     "sarifhtml <input.sarif> [output.html]",
		Short:   "Convert a SARIF file into a standalone HTML report",
		Long:    "sarifhtml reads a SARIF 2.1.0 log and writes a self-contained HTML report:\nsummary statistics, findings grouped by severity, tool notifications, and\na per-file issue table.",
		Args:    cobra.RangeArgs(1, 2),
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past arg validation; failures from here are reported
			// through the console, not cobra.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			flags := config.CliFlags{
				Theme:      themeFlag,
				NoColor:    noColorFlag,
				Summary:    summaryFlag,
				ThemeSet:   cmd.Flags().Changed("theme"),
				NoColorSet: cmd.Flags().Changed("no-color"),
				SummarySet: cmd.Flags().Changed("summary"),
			}
			return convert(args, config.Resolve(flags), stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&themeFlag, "theme", config.DefaultTheme, "HTML color theme (light|dark)")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable styled console output")
	cmd.Flags().BoolVar(&summaryFlag, "summary", false, "print a per-level summary table after converting")

	return cmd
}

// convert runs the whole pipeline: load, derive, render, write.
// The output file is only touched after the input loads cleanly.
func convert(args []string, cfg config.Resolved, stdout, stderr io.Writer) error {
	inputPath := args[0]
	outputPath := defaultOutputPath(inputPath)
	if len(args) == 2 {
		outputPath = args[1]
	}

	cons := console.New(stdout, stderr, console.SelectTheme(stdout, cfg.NoColor))

	data, err := os.ReadFile(inputPath)
	if err != nil {
		cons.LoadFailed(err)
		return err
	}
	doc, err := sarif.ReadBytes(data)
	if err != nil {
		cons.LoadFailed(err)
		return err
	}
	if !detect.IsSARIF(data) {
		cons.Warnf("input does not look like a SARIF document (missing version or runs); continuing")
	}

	rep := report.Build(filepath.Base(inputPath), doc)
	cons.Loaded(rep.InputName, rep.Stats.Total, len(rep.Notifications))
	if rep.SkippedRuns > 0 {
		cons.Notef("%d additional run(s) ignored; the report covers the first run only", rep.SkippedRuns)
	}
	for _, lc := range rep.Groups.Unrendered() {
		cons.Notef("%d result(s) with level %q are counted in the statistics but not listed by severity", lc.Count, lc.Level)
	}

	renderer := render.NewRenderer()
	renderer.Theme = render.ThemeByName(cfg.Theme)
	if err := renderer.WriteFile(outputPath, rep); err != nil {
		cons.WriteFailed(err)
		return err
	}
	cons.Generated(outputPath)
	cons.Done(outputPath)

	if cfg.Summary {
		cons.Summary(rep.Stats)
	}
	return nil
}

// defaultOutputPath derives the report name from the input's base
// name, dropping the extension. The report always lands in the
// current directory, not next to the input.
func defaultOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_report.html"
}
