package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"bib2json/src/internal/schema"
)

const (
	DefaultSource      = "publication.bib"
	DefaultDestination = "publications.json"
)

// Format is an output document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks the output format from the destination extension.
// Anything other than .yaml/.yml is written as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// ReadSource returns the full text of the BibTeX file at path.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// WriteRecords encodes records in the format implied by target and writes the
// document, creating the parent directory if needed.
func WriteRecords(target string, records []schema.Record) error {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatFor(target), records); err != nil {
		return fmt.Errorf("encode %s: %w", target, err)
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes the encoder
// always emits back into literal characters. Escaped backslashes are skipped
// as pairs so a literal "\\u2028" in a value is left alone.
func unescapeLineSeparators(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if i+6 <= len(b) && b[i+1] == 'u' {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// Encode writes records to w as a single document. JSON output is indented
// with two spaces and leaves non-ASCII and HTML characters unescaped.
func Encode(w io.Writer, f Format, records []schema.Record) error {
	if records == nil {
		records = []schema.Record{}
	}
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return err
		}
		_, err := w.Write(unescapeLineSeparators(buf.Bytes()))
		return err
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
