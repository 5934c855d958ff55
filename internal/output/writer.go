// Package output serializes run reports for machines: a single JSON or YAML
// document, or one JSON line per item.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents output format types.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatJSONL, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Structured reports whether f is a machine-readable format.
func (f Format) Structured() bool {
	return f != FormatText
}

// Streaming reports whether items are written as they arrive rather than
// collected into one document.
func (f Format) Streaming() bool {
	return f == FormatJSONL
}

// Writer handles output serialization.
type Writer interface {
	// Write outputs or buffers a single item.
	Write(v any) error

	// Close writes any buffered items.
	Close() error
}

// NewWriter creates a writer for the specified structured format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return &documentWriter{w: w, encode: encodeJSON}, nil
	case FormatJSONL:
		return &lineWriter{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		return &documentWriter{w: w, encode: encodeYAML}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// lineWriter writes newline-delimited JSON, one item per line.
type lineWriter struct {
	enc *json.Encoder
}

func (l *lineWriter) Write(v any) error {
	return l.enc.Encode(v)
}

func (l *lineWriter) Close() error {
	return nil
}

// documentWriter collects items and writes them as one document on Close.
// A single item is written as-is, several as a list.
type documentWriter struct {
	w      io.Writer
	items  []any
	encode func(io.Writer, any) error
}

func (d *documentWriter) Write(v any) error {
	d.items = append(d.items, v)
	return nil
}

func (d *documentWriter) Close() error {
	if len(d.items) == 1 {
		return d.encode(d.w, d.items[0])
	}
	if d.items == nil {
		return d.encode(d.w, []any{})
	}
	return d.encode(d.w, d.items)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
