// Package report derives the view model for a SARIF HTML report:
// aggregate statistics, level-keyed groups, and display locations.
// Everything here is a pure function of the loaded document; nothing
// mutates its input.
package report

import (
	"sort"

	"github.com/dkoosis/sarifhtml/pkg/sarif"
)

// Canonical SARIF severity levels. Anything else a tool emits is
// carried verbatim as an ad-hoc level.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelNote    = "note"
)

// Stats aggregates statistics over a run's results.
//
// ByLevel counts raw level strings, so ad-hoc levels land there even
// though Errors/Warnings/Notes ignore them. The two views diverge on
// purpose: the stat cards show the canonical trio, the level map keeps
// the truth.
type Stats struct {
	Total    int
	Errors   int
	Warnings int
	Notes    int
	Files    int // distinct files with at least one located finding
	Rules    int // distinct non-empty rule IDs
	ByLevel  map[string]int
	ByFile   map[string]int

	fileOrder []string // first-seen order, for stable tie-breaks
}

// ComputeStats folds a result list into aggregate statistics in a
// single pass. Results without a usable location count toward Total
// but not Files/ByFile.
func ComputeStats(results []sarif.Result) Stats {
	stats := Stats{
		ByLevel: make(map[string]int),
		ByFile:  make(map[string]int),
	}
	rules := make(map[string]struct{})

	for _, result := range results {
		stats.Total++

		level := normalizeLevel(result.Level)
		stats.ByLevel[level]++
		switch level {
		case LevelError:
			stats.Errors++
		case LevelWarning:
			stats.Warnings++
		case LevelNote:
			stats.Notes++
		}

		if uri := primaryURI(result); uri != "" {
			if _, seen := stats.ByFile[uri]; !seen {
				stats.fileOrder = append(stats.fileOrder, uri)
			}
			stats.ByFile[uri]++
		}

		if result.RuleID != "" {
			rules[result.RuleID] = struct{}{}
		}
	}

	stats.Files = len(stats.ByFile)
	stats.Rules = len(rules)
	return stats
}

// FileCount pairs a file URI with its finding count.
type FileCount struct {
	URI   string
	Count int
}

// TopFiles returns per-file counts sorted by count descending. Ties
// keep the order the files were first seen in. n <= 0 returns all.
func (s Stats) TopFiles(n int) []FileCount {
	files := make([]FileCount, 0, len(s.fileOrder))
	for _, uri := range s.fileOrder {
		files = append(files, FileCount{URI: uri, Count: s.ByFile[uri]})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Count > files[j].Count
	})

	if n > 0 && len(files) > n {
		files = files[:n]
	}
	return files
}

// normalizeLevel applies the SARIF default: a result with no level is
// a warning. Unrecognized level strings pass through untouched.
func normalizeLevel(level string) string {
	if level == "" {
		return LevelWarning
	}
	return level
}

// primaryURI returns the URI of the result's first location, or "".
func primaryURI(result sarif.Result) string {
	if len(result.Locations) == 0 {
		return ""
	}
	return result.Locations[0].PhysicalLocation.ArtifactLocation.URI
}
