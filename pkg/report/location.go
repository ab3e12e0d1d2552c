package report

import (
	"strconv"

	"github.com/dkoosis/sarifhtml/pkg/sarif"
)

// Location is the display form of a finding's first physical location.
// Fields are strings so absent values can render as sentinels instead
// of zeros.
type Location struct {
	File      string
	StartLine string
	StartCol  string
	EndLine   string
	EndCol    string
	Snippet   string
}

// ExtractLocation pulls display location info from a result's first
// location. It never fails: a result with no locations, or with holes
// at any depth, falls back to "unknown" for the file and "?" for
// positions.
func ExtractLocation(result sarif.Result) Location {
	loc := Location{
		File:      "unknown",
		StartLine: "?",
		StartCol:  "?",
		EndLine:   "?",
		EndCol:    "?",
	}

	if len(result.Locations) == 0 {
		return loc
	}

	phys := result.Locations[0].PhysicalLocation
	if phys.ArtifactLocation.URI != "" {
		loc.File = phys.ArtifactLocation.URI
	}

	region := phys.Region
	loc.StartLine = position(region.StartLine)
	loc.StartCol = position(region.StartColumn)
	loc.EndLine = position(region.EndLine)
	loc.EndCol = position(region.EndColumn)
	if region.Snippet != nil {
		loc.Snippet = region.Snippet.Text
	}

	return loc
}

// position renders a 1-based position, "?" when absent.
func position(n int) string {
	if n <= 0 {
		return "?"
	}
	return strconv.Itoa(n)
}
