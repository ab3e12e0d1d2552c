// Package console prints sarifhtml's status lines and the optional
// aggregate summary. Status goes to stdout, diagnostics to stderr;
// pipes and NO_COLOR environments never see ANSI sequences.
package console

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/sarifhtml/pkg/report"
)

// Theme defines colors for console output. The status glyphs are part
// of the tool's output contract, so they are identical across themes;
// only the styling differs.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the status glyph set.
type ThemeIcons struct {
	Pass string
	Fail string
	Warn string
}

// DefaultTheme returns the colored theme for interactive terminals.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons:   ThemeIcons{Pass: "✓", Fail: "✗", Warn: "⚠"},
	}
}

// MonoTheme returns a style-free theme for pipes, CI, and NO_COLOR.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Primary: lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
		Icons:   ThemeIcons{Pass: "✓", Fail: "✗", Warn: "⚠"},
	}
}

// SelectTheme picks the theme for w: mono when color is disabled or w
// is not a terminal.
func SelectTheme(w io.Writer, noColor bool) Theme {
	if noColor || !IsTTY(w) {
		return MonoTheme()
	}
	return DefaultTheme()
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Console writes the tool's status surface.
type Console struct {
	out   io.Writer
	err   io.Writer
	theme Theme
	title cases.Caser
}

// New returns a console writing status to out and diagnostics to err.
func New(out, err io.Writer, theme Theme) *Console {
	return &Console{
		out:   out,
		err:   err,
		theme: theme,
		title: cases.Title(language.English),
	}
}

// Loaded reports a successful load with result and notification counts.
func (c *Console) Loaded(name string, results, notifications int) {
	fmt.Fprintf(c.out, "%s Loaded SARIF file: %s\n", c.pass(), name)
	fmt.Fprintf(c.out, "  - %d results found\n", results)
	fmt.Fprintf(c.out, "  - %d notifications found\n", notifications)
}

// LoadFailed reports a load failure.
func (c *Console) LoadFailed(err error) {
	fmt.Fprintf(c.err, "%s Error loading SARIF file: %v\n", c.fail(), err)
}

// Generated reports the written report file.
func (c *Console) Generated(path string) {
	fmt.Fprintf(c.out, "%s HTML report generated: %s\n", c.pass(), path)
}

// WriteFailed reports a write failure.
func (c *Console) WriteFailed(err error) {
	fmt.Fprintf(c.err, "%s Error writing HTML file: %v\n", c.fail(), err)
}

// Done prints the closing hint after a successful conversion.
func (c *Console) Done(path string) {
	fmt.Fprintf(c.out, "\n%s Done! Open '%s' in your browser to view the report.\n", c.pass(), path)
}

// Notef prints a diagnostic note to stderr.
func (c *Console) Notef(format string, args ...interface{}) {
	fmt.Fprintf(c.err, "note: "+format+"\n", args...)
}

// Warnf prints a warning to stderr.
func (c *Console) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(c.err, "%s %s\n", c.theme.Warning.Render(c.theme.Icons.Warn), fmt.Sprintf(format, args...))
}

// Summary prints an aligned level/count table built from the raw level
// map, so levels the HTML body hides still show up here.
func (c *Console) Summary(stats report.Stats) {
	type row struct {
		level string
		label string
		count int
	}

	var rows []row
	for _, level := range report.RenderedLevels {
		if n, ok := stats.ByLevel[level]; ok {
			rows = append(rows, row{level, c.title.String(level), n})
		}
	}

	var adHoc []string
	for level := range stats.ByLevel {
		if level != report.LevelError && level != report.LevelWarning && level != report.LevelNote {
			adHoc = append(adHoc, level)
		}
	}
	sort.Strings(adHoc)
	for _, level := range adHoc {
		rows = append(rows, row{level, c.title.String(level), stats.ByLevel[level]})
	}

	if len(rows) == 0 {
		return
	}

	labelWidth, countWidth := 0, 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.label); w > labelWidth {
			labelWidth = w
		}
		if w := len(strconv.Itoa(r.count)); w > countWidth {
			countWidth = w
		}
	}

	fmt.Fprintf(c.out, "\n%s\n", c.theme.Bold.Render("Summary by level"))
	for _, r := range rows {
		label := c.levelStyle(r.level).Render(padRight(r.label, labelWidth))
		fmt.Fprintf(c.out, "  %s  %s\n", label, padLeft(strconv.Itoa(r.count), countWidth))
	}
}

func (c *Console) pass() string { return c.theme.Success.Render(c.theme.Icons.Pass) }
func (c *Console) fail() string { return c.theme.Error.Render(c.theme.Icons.Fail) }

func (c *Console) levelStyle(level string) lipgloss.Style {
	switch level {
	case report.LevelError:
		return c.theme.Error
	case report.LevelWarning:
		return c.theme.Warning
	case report.LevelNote:
		return c.theme.Primary
	default:
		return c.theme.Muted
	}
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// padLeft pads s with leading spaces to the given display width.
func padLeft(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
