package report

import "github.com/dkoosis/sarifhtml/pkg/sarif"

// Report is the fully derived view model the HTML renderer consumes.
// Built once from a loaded document, then read-only.
type Report struct {
	InputName     string // base name of the SARIF file, shown in the header
	Stats         Stats
	Groups        *LevelGroups
	Notifications []sarif.Notification
	Files         []FileCount // count-desc, ties in first-seen order
	SkippedRuns   int         // runs beyond the first, ignored by the report
}

// Build derives the complete report model from a loaded document.
// Only the first run contributes; a document with no runs yields an
// empty report.
func Build(inputName string, doc *sarif.Document) *Report {
	rep := &Report{InputName: inputName}

	if doc != nil && len(doc.Runs) > 1 {
		rep.SkippedRuns = len(doc.Runs) - 1
	}

	var results []sarif.Result
	if run := doc.FirstRun(); run != nil {
		results = run.Results
		rep.Notifications = run.Notifications()
	}

	rep.Stats = ComputeStats(results)
	rep.Groups = GroupByLevel(results)
	rep.Files = rep.Stats.TopFiles(0)

	return rep
}
