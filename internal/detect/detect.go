// Package detect sniffs input bytes to check they look like a SARIF
// document before the full parse runs.
package detect

import (
	"encoding/json"
)

// IsSARIF reports whether data plausibly holds a SARIF log: a JSON
// object carrying a version string and a runs array. It is a cheap
// advisory probe, not a validator; callers use it to warn about
// suspicious input, never to reject it.
func IsSARIF(data []byte) bool {
	// Trim leading whitespace
	for len(data) > 0 && (data[0] == ' ' || data[0] == '\t' || data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	if len(data) == 0 {
		return false
	}

	// A SARIF log is a single JSON object
	if data[0] != '{' {
		return false
	}

	var probe struct {
		Version string            `json:"version"`
		Schema  string            `json:"$schema"`
		Runs    []json.RawMessage `json:"runs"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Version != "" && probe.Runs != nil
}
