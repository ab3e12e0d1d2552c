package report

import "github.com/dkoosis/sarifhtml/pkg/sarif"

// RenderedLevels is the fixed order the report body walks. Groups for
// any other level are built but never rendered; Unrendered surfaces
// them so the gap stays visible.
var RenderedLevels = []string{LevelError, LevelWarning, LevelNote}

// LevelGroups partitions results by severity level, preserving input
// order within each group. The canonical levels always have a group,
// possibly empty; any other level string gets a group on first sight.
type LevelGroups struct {
	byLevel map[string][]sarif.Result
	order   []string // ad-hoc levels in first-seen order
}

// GroupByLevel stably partitions results by their (defaulted) level.
func GroupByLevel(results []sarif.Result) *LevelGroups {
	g := &LevelGroups{
		byLevel: map[string][]sarif.Result{
			LevelError:   {},
			LevelWarning: {},
			LevelNote:    {},
		},
	}

	for _, result := range results {
		level := normalizeLevel(result.Level)
		if _, seen := g.byLevel[level]; !seen {
			g.order = append(g.order, level)
		}
		g.byLevel[level] = append(g.byLevel[level], result)
	}

	return g
}

// Level returns the group for a level. Canonical levels always return
// a (possibly empty) slice; an ad-hoc level never seen returns nil.
func (g *LevelGroups) Level(level string) []sarif.Result {
	return g.byLevel[level]
}

// Levels returns every level with a group: the canonical three first,
// then ad-hoc levels in first-seen order.
func (g *LevelGroups) Levels() []string {
	levels := make([]string, 0, len(RenderedLevels)+len(g.order))
	levels = append(levels, RenderedLevels...)
	levels = append(levels, g.order...)
	return levels
}

// LevelCount pairs a level string with its group size.
type LevelCount struct {
	Level string
	Count int
}

// Unrendered lists the ad-hoc groups the report body skips, in
// first-seen order. Empty when every finding has a canonical level.
func (g *LevelGroups) Unrendered() []LevelCount {
	var counts []LevelCount
	for _, level := range g.order {
		counts = append(counts, LevelCount{Level: level, Count: len(g.byLevel[level])})
	}
	return counts
}
