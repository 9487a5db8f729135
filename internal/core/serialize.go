package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a structured text output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name, case-insensitively. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use json or yaml)", s)
	}
}

// Serializer renders record slices as an array of field-labeled objects.
// Fields appear in schema declaration order.
type Serializer struct {
	Format Format
	Indent int // Spaces per level; 0 renders compact JSON
}

// DefaultSerializer renders compact JSON.
var DefaultSerializer = Serializer{Format: FormatJSON}

// Serialize renders records with s.
func Serialize[T any](s Serializer, records []T) (string, error) {
	if records == nil {
		records = []T{}
	}

	var buf bytes.Buffer
	switch s.Format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		indent := s.Indent
		if indent <= 0 {
			indent = 2
		}
		enc.SetIndent(indent)
		if err := enc.Encode(records); err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}

	case FormatJSON, "":
		enc := json.NewEncoder(&buf)
		if s.Indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", s.Indent))
		}
		if err := enc.Encode(records); err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}

	default:
		return "", fmt.Errorf("unknown output format %q", s.Format)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// Parse decodes text produced by Serialize back into records.
func Parse[T any](format Format, text string) ([]T, error) {
	var out []T
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(text), &out); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON, "":
		if err := json.Unmarshal([]byte(text), &out); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return out, nil
}
