// Package render turns a report model into a standalone HTML page.
//
// Escaping happens in exactly one place: the html/template execution.
// Nothing is pre-escaped and nothing is marked template.HTML, so every
// user-controlled field (messages, rule IDs, URIs, snippets, tags,
// file names) passes through contextual auto-escaping exactly once.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dkoosis/sarifhtml/pkg/report"
)

// ErrWrite marks any failure to render or write the HTML report.
// Callers classify with errors.Is(err, ErrWrite).
var ErrWrite = errors.New("report write")

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

// Renderer renders a report model into a standalone HTML page.
// Now is injectable so the generation timestamp is deterministic
// under test; zero value of the struct is not usable, use NewRenderer.
type Renderer struct {
	Theme Theme
	Now   func() time.Time
}

// NewRenderer returns a renderer with the light theme and wall-clock time.
func NewRenderer() *Renderer {
	return &Renderer{Theme: LightTheme(), Now: time.Now}
}

// page is the template's root data.
type page struct {
	Title         string
	Generated     string
	Theme         Theme
	Stats         report.Stats
	Notifications []string
	Sections      []levelSection
	Files         []report.FileCount
}

// levelSection is one severity block of the report body.
type levelSection struct {
	Level   string // also the css class: error, warning, note
	Heading string
	Icon    string
	Count   int
	Items   []resultItem
}

// resultItem is one finding, ready for display.
type resultItem struct {
	Level    string
	Message  string
	RuleID   string
	Location report.Location
	Tags     []string
}

// Render writes the HTML report for rep to w.
//
// Section order is fixed: header, stat cards, notifications (when
// any), one block per canonical severity level (empty levels are
// skipped), the per-file table (when any file was seen), footer.
func (r *Renderer) Render(w io.Writer, rep *report.Report) error {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	data := page{
		Title:     rep.InputName,
		Generated: now().Format("2006-01-02 15:04:05"),
		Theme:     r.Theme,
		Stats:     rep.Stats,
		Files:     rep.Files,
	}

	for _, notif := range rep.Notifications {
		data.Notifications = append(data.Notifications, notif.Message.Text)
	}

	if rep.Groups != nil {
		for _, level := range report.RenderedLevels {
			results := rep.Groups.Level(level)
			if len(results) == 0 {
				continue
			}

			section := levelSection{
				Level:   level,
				Heading: strings.ToUpper(level) + "s",
				Icon:    sectionIcon(level),
				Count:   len(results),
			}
			for _, res := range results {
				item := resultItem{
					Level:    level,
					Message:  res.Message.Text,
					RuleID:   res.RuleID,
					Location: report.ExtractLocation(res),
					Tags:     res.Properties.Tags,
				}
				if item.RuleID == "" {
					item.RuleID = "unknown"
				}
				section.Items = append(section.Items, item)
			}
			data.Sections = append(data.Sections, section)
		}
	}

	if err := reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute report template: %w", err)
	}
	return nil
}

// WriteFile renders rep and writes it to path in one shot. Rendering
// happens in memory first, so a template failure never leaves a
// partial file behind.
func (r *Renderer) WriteFile(path string, rep *report.Report) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, rep); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func sectionIcon(level string) string {
	switch level {
	case report.LevelError:
		return "❌"
	case report.LevelWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}
