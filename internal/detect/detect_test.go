package detect

import "testing"

func TestIsSARIF_ValidDocument(t *testing.T) {
	input := `{"version":"2.1.0","$schema":"https://sarif.dev","runs":[{"tool":{"driver":{"name":"test"}},"results":[]}]}`
	if !IsSARIF([]byte(input)) {
		t.Error("expected SARIF document to be recognized")
	}
}

func TestIsSARIF_EmptyRunsArray(t *testing.T) {
	input := `{"version":"2.1.0","runs":[]}`
	if !IsSARIF([]byte(input)) {
		t.Error("expected document with empty runs array to be recognized")
	}
}

func TestIsSARIF_MissingVersion(t *testing.T) {
	input := `{"runs":[{"results":[]}]}`
	if IsSARIF([]byte(input)) {
		t.Error("expected document without version to be rejected")
	}
}

func TestIsSARIF_MissingRuns(t *testing.T) {
	input := `{"version":"2.1.0"}`
	if IsSARIF([]byte(input)) {
		t.Error("expected document without runs to be rejected")
	}
}

func TestIsSARIF_Empty(t *testing.T) {
	if IsSARIF([]byte("")) {
		t.Error("expected empty input to be rejected")
	}
}

func TestIsSARIF_PlainText(t *testing.T) {
	if IsSARIF([]byte("this is not json")) {
		t.Error("expected plain text to be rejected")
	}
}

func TestIsSARIF_InvalidJSON(t *testing.T) {
	if IsSARIF([]byte("{invalid")) {
		t.Error("expected invalid JSON to be rejected")
	}
}

func TestIsSARIF_LeadingWhitespace(t *testing.T) {
	input := "\n\t  " + `{"version":"2.1.0","runs":[]}`
	if !IsSARIF([]byte(input)) {
		t.Error("expected leading whitespace to be tolerated")
	}
}

func TestIsSARIF_JSONArray(t *testing.T) {
	if IsSARIF([]byte(`[{"version":"2.1.0"}]`)) {
		t.Error("expected a JSON array to be rejected")
	}
}

func TestIsSARIF_GoTestJSONStream(t *testing.T) {
	input := `{"Time":"2024-01-01T00:00:00Z","Action":"start","Package":"example.com/pkg"}` + "\n"
	if IsSARIF([]byte(input)) {
		t.Error("expected go test -json stream to be rejected")
	}
}
