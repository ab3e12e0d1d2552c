package report

import (
	"testing"

	"github.com/dkoosis/sarifhtml/pkg/sarif"
)

func TestExtractLocation_Complete(t *testing.T) {
	res := sarif.Result{
		Locations: []sarif.Location{{
			PhysicalLocation: sarif.PhysicalLocation{
				ArtifactLocation: sarif.ArtifactLocation{URI: "pkg/io/copy.go"},
				Region: sarif.Region{
					StartLine:   41,
					StartColumn: 8,
					EndLine:     43,
					EndColumn:   2,
					Snippet:     &sarif.ArtifactContent{Text: "io.Copy(dst, src)"},
				},
			},
		}},
	}

	loc := ExtractLocation(res)

	if loc.File != "pkg/io/copy.go" {
		t.Errorf("File: got %q", loc.File)
	}
	if loc.StartLine != "41" || loc.StartCol != "8" {
		t.Errorf("start: got %s:%s", loc.StartLine, loc.StartCol)
	}
	if loc.EndLine != "43" || loc.EndCol != "2" {
		t.Errorf("end: got %s:%s", loc.EndLine, loc.EndCol)
	}
	if loc.Snippet != "io.Copy(dst, src)" {
		t.Errorf("Snippet: got %q", loc.Snippet)
	}
}

func TestExtractLocation_NoLocations(t *testing.T) {
	loc := ExtractLocation(sarif.Result{})

	if loc.File != "unknown" {
		t.Errorf("File: got %q, want unknown", loc.File)
	}
	for name, got := range map[string]string{
		"StartLine": loc.StartLine,
		"StartCol":  loc.StartCol,
		"EndLine":   loc.EndLine,
		"EndCol":    loc.EndCol,
	} {
		if got != "?" {
			t.Errorf("%s: got %q, want ?", name, got)
		}
	}
	if loc.Snippet != "" {
		t.Errorf("Snippet: got %q, want empty", loc.Snippet)
	}
}

func TestExtractLocation_EmptyPhysicalLocation(t *testing.T) {
	res := sarif.Result{Locations: []sarif.Location{{}}}

	loc := ExtractLocation(res)

	if loc.File != "unknown" {
		t.Errorf("File: got %q, want unknown", loc.File)
	}
	if loc.StartLine != "?" {
		t.Errorf("StartLine: got %q, want ?", loc.StartLine)
	}
}

func TestExtractLocation_PartialRegion(t *testing.T) {
	res := sarif.Result{
		Locations: []sarif.Location{{
			PhysicalLocation: sarif.PhysicalLocation{
				ArtifactLocation: sarif.ArtifactLocation{URI: "main.go"},
				Region:           sarif.Region{StartLine: 7},
			},
		}},
	}

	loc := ExtractLocation(res)

	if loc.StartLine != "7" {
		t.Errorf("StartLine: got %q, want 7", loc.StartLine)
	}
	if loc.StartCol != "?" || loc.EndLine != "?" || loc.EndCol != "?" {
		t.Errorf("absent positions should be ?, got %+v", loc)
	}
}

func TestExtractLocation_UsesFirstLocationOnly(t *testing.T) {
	res := sarif.Result{
		Locations: []sarif.Location{
			{PhysicalLocation: sarif.PhysicalLocation{
				ArtifactLocation: sarif.ArtifactLocation{URI: "first.go"},
			}},
			{PhysicalLocation: sarif.PhysicalLocation{
				ArtifactLocation: sarif.ArtifactLocation{URI: "second.go"},
			}},
		},
	}

	if loc := ExtractLocation(res); loc.File != "first.go" {
		t.Errorf("File: got %q, want first.go", loc.File)
	}
}
