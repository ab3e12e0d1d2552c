// Package sarif provides SARIF (Static Analysis Results Interchange Format) parsing.
package sarif

// Document represents a SARIF 2.1.0 document.
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html
type Document struct {
	Version string `json:"version"`
	Schema  string `json:"$schema,omitempty"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single analysis run.
//
// Some emitters attach toolExecutionNotifications directly to the run
// instead of nesting them under invocations; both shapes are decoded.
type Run struct {
	Tool                       Tool           `json:"tool"`
	Results                    []Result       `json:"results"`
	Invocations                []Invocation   `json:"invocations,omitempty"`
	ToolExecutionNotifications []Notification `json:"toolExecutionNotifications,omitempty"`
}

// Invocation describes one execution of the tool.
type Invocation struct {
	ExecutionSuccessful        bool           `json:"executionSuccessful,omitempty"`
	ToolExecutionNotifications []Notification `json:"toolExecutionNotifications,omitempty"`
}

// Notification reports a runtime condition of the tool itself,
// such as a parse failure in an input file.
type Notification struct {
	Level   string  `json:"level,omitempty"`
	Message Message `json:"message"`
}

// Tool identifies the analysis tool that produced the results.
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver describes the tool's identity.
type Driver struct {
	Name           string           `json:"name"`
	Version        string           `json:"version,omitempty"`
	InformationURI string           `json:"informationUri,omitempty"`
	Rules          []RuleDescriptor `json:"rules,omitempty"`
}

// RuleDescriptor describes a rule the tool can report against.
type RuleDescriptor struct {
	ID               string  `json:"id"`
	Name             string  `json:"name,omitempty"`
	ShortDescription Message `json:"shortDescription,omitempty"`
}

// Result represents a single issue found by the tool.
type Result struct {
	RuleID     string      `json:"ruleId"`
	Level      string      `json:"level"` // "error", "warning", "note", "none"
	Message    Message     `json:"message"`
	Locations  []Location  `json:"locations,omitempty"`
	Properties PropertyBag `json:"properties,omitempty"`
}

// Message contains the issue description.
type Message struct {
	Text string `json:"text"`
}

// Location identifies where the issue was found.
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation pinpoints the file and region.
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region,omitempty"`
}

// ArtifactLocation identifies the file.
type ArtifactLocation struct {
	URI       string `json:"uri"`
	URIBaseID string `json:"uriBaseId,omitempty"`
	Index     int    `json:"index,omitempty"`
}

// Region identifies the specific location within the file.
// Line and column numbers are 1-based; zero means absent.
type Region struct {
	StartLine   int              `json:"startLine,omitempty"`
	StartColumn int              `json:"startColumn,omitempty"`
	EndLine     int              `json:"endLine,omitempty"`
	EndColumn   int              `json:"endColumn,omitempty"`
	Snippet     *ArtifactContent `json:"snippet,omitempty"`
}

// ArtifactContent carries file content, such as a region snippet.
type ArtifactContent struct {
	Text string `json:"text"`
}

// PropertyBag holds the subset of result properties the report uses.
type PropertyBag struct {
	Tags []string `json:"tags,omitempty"`
}

// FirstRun returns the document's first run, or nil when the document
// has none. Reports are built from the first run only.
func (d *Document) FirstRun() *Run {
	if d == nil || len(d.Runs) == 0 {
		return nil
	}
	return &d.Runs[0]
}

// Notifications returns the run's tool execution notifications.
// Run-level notifications win over the standard invocations nesting
// when both are present.
func (r *Run) Notifications() []Notification {
	if r == nil {
		return nil
	}
	if len(r.ToolExecutionNotifications) > 0 {
		return r.ToolExecutionNotifications
	}
	var notes []Notification
	for _, inv := range r.Invocations {
		notes = append(notes, inv.ToolExecutionNotifications...)
	}
	return notes
}
