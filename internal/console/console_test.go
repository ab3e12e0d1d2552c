package console_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/sarifhtml/internal/console"
	"github.com/dkoosis/sarifhtml/pkg/report"
)

func monoConsole() (*console.Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errBuf bytes.Buffer
	return console.New(&out, &errBuf, console.MonoTheme()), &out, &errBuf
}

func TestConsole_PrintsLoadSurface_When_LoadSucceeds(t *testing.T) {
	t.Parallel()
	c, out, errBuf := monoConsole()

	c.Loaded("lint.sarif", 7, 2)

	want := "✓ Loaded SARIF file: lint.sarif\n" +
		"  - 7 results found\n" +
		"  - 2 notifications found\n"
	assert.Equal(t, want, out.String())
	assert.Empty(t, errBuf.String(), "stderr should stay silent on success")
}

func TestConsole_ReportsToStderr_When_LoadFails(t *testing.T) {
	t.Parallel()
	c, out, errBuf := monoConsole()

	c.LoadFailed(errors.New("decode sarif: unexpected EOF"))

	assert.Empty(t, out.String(), "stdout should stay silent on failure")
	assert.Equal(t, "✗ Error loading SARIF file: decode sarif: unexpected EOF\n", errBuf.String())
}

func TestConsole_PrintsGeneratedAndDone(t *testing.T) {
	t.Parallel()
	c, out, _ := monoConsole()

	c.Generated("lint_report.html")
	c.Done("lint_report.html")

	want := "✓ HTML report generated: lint_report.html\n" +
		"\n✓ Done! Open 'lint_report.html' in your browser to view the report.\n"
	assert.Equal(t, want, out.String())
}

func TestConsole_ReportsToStderr_When_WriteFails(t *testing.T) {
	t.Parallel()
	c, _, errBuf := monoConsole()

	c.WriteFailed(errors.New("permission denied"))

	assert.Equal(t, "✗ Error writing HTML file: permission denied\n", errBuf.String())
}

func TestConsole_PrefixesNotes(t *testing.T) {
	t.Parallel()
	c, _, errBuf := monoConsole()

	c.Notef("%d additional run(s) ignored", 2)

	assert.Equal(t, "note: 2 additional run(s) ignored\n", errBuf.String())
}

func TestConsole_WarnsWithIcon(t *testing.T) {
	t.Parallel()
	c, _, errBuf := monoConsole()

	c.Warnf("input does not look like a SARIF document")

	assert.Equal(t, "⚠ input does not look like a SARIF document\n", errBuf.String())
}

func TestSummary_OrdersCanonicalLevelsFirst_ThenAdHocSorted(t *testing.T) {
	t.Parallel()
	c, out, _ := monoConsole()

	stats := report.ComputeStats(nil)
	stats.ByLevel["warning"] = 2
	stats.ByLevel["error"] = 10
	stats.ByLevel["zebra"] = 1
	stats.ByLevel["info"] = 4

	c.Summary(stats)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// blank line, header, then one row per level
	require.Len(t, lines, 6)
	for i, label := range []string{"Error", "Warning", "Info", "Zebra"} {
		assert.Contains(t, lines[2+i], label, "row %d out of order", i)
	}
}

func TestSummary_AlignsLabelAndCountColumns(t *testing.T) {
	t.Parallel()
	c, out, _ := monoConsole()

	stats := report.ComputeStats(nil)
	stats.ByLevel["error"] = 100
	stats.ByLevel["note"] = 1

	c.Summary(stats)

	want := "\nSummary by level\n" +
		"  Error  100\n" +
		"  Note     1\n"
	assert.Equal(t, want, out.String())
}

func TestSummary_PrintsNothing_When_StatsEmpty(t *testing.T) {
	t.Parallel()
	c, out, _ := monoConsole()

	c.Summary(report.ComputeStats(nil))

	assert.Empty(t, out.String())
}

func TestSelectTheme_ReturnsMono_When_WriterIsNotTTY(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	theme := console.SelectTheme(&buf, false)

	assert.Equal(t, "mono", theme.Name)
}

func TestSelectTheme_ReturnsMono_When_ColorDisabled(t *testing.T) {
	t.Parallel()

	theme := console.SelectTheme(nil, true)

	assert.Equal(t, "mono", theme.Name)
}

func TestIsTTY_ReportsFalseForBuffer(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	assert.False(t, console.IsTTY(&buf))
}
