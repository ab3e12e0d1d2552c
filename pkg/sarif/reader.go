package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrLoad marks any failure to read or decode a SARIF input:
// unreadable file, malformed JSON, trailing garbage. Callers classify
// with errors.Is(err, ErrLoad).
var ErrLoad = errors.New("sarif load")

// ReadFile parses a SARIF file from disk.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses SARIF from an io.Reader.
//
// The document is accepted even when version or runs are absent: a
// syntactically valid JSON object with nothing in it yields an empty
// document rather than an error. Trailing data after the document is
// rejected.
func Read(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode sarif: %v", ErrLoad, err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after sarif document", ErrLoad)
	}

	return &doc, nil
}

// ReadBytes parses SARIF from a byte slice.
func ReadBytes(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}
