package output

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	cqerrors "github.com/sirseerhq/cosmos-query/internal/errors"
)

// Options control the serialized form and destination of the result payload.
type Options struct {
	// File is the output path; empty writes to the provided stream.
	File string

	// Indent is the indentation width in spaces. Ignored when Compact is set.
	Indent int

	// Compact emits no whitespace between structural tokens.
	Compact bool
}

// Marshal serializes the records as one JSON array. A nil record slice
// serializes as [], never as null.
func Marshal(records []json.RawMessage, opts Options) ([]byte, error) {
	if records == nil {
		records = []json.RawMessage{}
	}
	if opts.Compact {
		return json.Marshal(records)
	}
	return json.MarshalIndent(records, "", strings.Repeat(" ", opts.Indent))
}

// Write renders the records to the configured destination and returns the
// number of bytes written. When opts.File is empty the payload goes to the
// provided stream, typically stdout.
func Write(records []json.RawMessage, stream io.Writer, opts Options) (int64, error) {
	if opts.File != "" {
		return writeFile(records, opts)
	}
	return WriteTo(records, stream, opts)
}

// WriteTo writes the serialized payload to w. A broken pipe terminates the
// write silently and successfully.
func WriteTo(records []json.RawMessage, w io.Writer, opts Options) (int64, error) {
	payload, err := Marshal(records, opts)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(payload)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			return int64(n), nil
		}
		return int64(n), &cqerrors.OutputError{Path: "stdout", Err: err}
	}
	return int64(n), nil
}

// writeFile creates or overwrites the target file with the full payload.
// Failures wrap the underlying OS error, keeping permission-denied and
// missing-path cases distinguishable through errors.Is.
func writeFile(records []json.RawMessage, opts Options) (int64, error) {
	payload, err := Marshal(records, opts)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(opts.File)
	if err != nil {
		return 0, &cqerrors.OutputError{Path: opts.File, Err: err}
	}

	n, werr := f.Write(payload)
	cerr := f.Close()
	if werr != nil {
		return int64(n), &cqerrors.OutputError{Path: opts.File, Err: werr}
	}
	if cerr != nil {
		return int64(n), &cqerrors.OutputError{Path: opts.File, Err: cerr}
	}
	return int64(n), nil
}
