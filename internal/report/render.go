// Package report renders scenario reports as JSON, YAML or an aligned text
// table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/fleetcarbon/internal/scenario"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownFormat indicates an output format other than json, yaml or table.
var ErrUnknownFormat = constError("unknown output format")

// Formats returns the supported output formats.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatTable}
}

// Render writes r to w in format.
func Render(w io.Writer, r *scenario.Report, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return RenderJSON(w, NewView(r))
	case FormatYAML:
		return RenderYAML(w, NewView(r))
	case FormatTable:
		return RenderTable(w, r)
	default:
		return fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

// RenderYAML writes v as YAML.
func RenderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
