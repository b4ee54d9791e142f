// Package output renders update decisions and outcomes for the terminal,
// in plain text or as JSON/YAML for scripting.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format represents an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format string into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// Writer renders values in the configured format.
type Writer struct {
	format Format
	w      io.Writer
}

// NewWriter creates a writer rendering to w.
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{format: format, w: w}
}

// Write renders v. In the structured formats v is marshalled as-is; text
// mode goes through writeText.
func (w *Writer) Write(v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w.w)
		enc.SetIndent(2)
		return enc.Encode(v)
	default:
		return w.writeText(v)
	}
}

// writeText renders v for a human. Decisions and reports provide their own
// String; errors render with an "error:" prefix so failed phases read the
// same everywhere.
func (w *Writer) writeText(v any) error {
	var err error
	switch t := v.(type) {
	case fmt.Stringer:
		_, err = fmt.Fprintln(w.w, t.String())
	case error:
		_, err = fmt.Fprintln(w.w, "error:", t.Error())
	default:
		_, err = fmt.Fprintf(w.w, "%+v\n", v)
	}
	return err
}

// Progress rewrites a single download progress line in place.
func Progress(w io.Writer, percent int) {
	fmt.Fprintf(w, "\rDownloading... %3d%%", percent)
}

// ProgressDone terminates an in-place progress line.
func ProgressDone(w io.Writer) {
	fmt.Fprintln(w)
}
