package core

// validation.go provides the checks applied before and during decoding.
//
// Validation happens at three levels:
//  1. File name: the base name must be letters, digits and spaces plus ".csv"
//  2. Header: names and order must match the schema exactly
//  3. Row: field count must equal schema arity, every cell must be valid
//     UTF-8 and each cell must satisfy its FieldSpec

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// fileNamePattern is the accepted base name of an input file.
var fileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+\.csv$`)

// ValidateFileName checks the base name of path without opening the file.
func ValidateFileName(path string) error {
	if strings.TrimSpace(path) == "" {
		return &Error{Kind: KindWrongFileType, Op: "validate", Msg: "Enter proper file type: empty path"}
	}

	base := filepath.Base(path)
	if !fileNamePattern.MatchString(base) {
		return &Error{
			Kind: KindWrongFileType,
			Op:   "validate",
			Path: path,
			Msg:  fmt.Sprintf("Enter proper file type: %q", base),
		}
	}
	return nil
}

// ValidateHeaders checks that header matches the expected columns exactly.
// Comparison is case-sensitive and positional; surrounding whitespace is ignored.
func ValidateHeaders(header []string, specs []FieldSpec) error {
	if len(header) != len(specs) {
		return fmt.Errorf("header has %d columns, expected %d (%s)",
			len(header), len(specs), strings.Join(specNames(specs), ","))
	}

	var mismatched []string
	for i, spec := range specs {
		if strings.TrimSpace(header[i]) != spec.Name {
			mismatched = append(mismatched, fmt.Sprintf("column %d is %q, expected %q", i+1, header[i], spec.Name))
		}
	}

	if len(mismatched) > 0 {
		return fmt.Errorf("header mismatch: %s", strings.Join(mismatched, "; "))
	}
	return nil
}

// ValidateRow checks a data row against the field specs and returns the first error.
func ValidateRow(cells []string, specs []FieldSpec) error {
	if len(cells) != len(specs) {
		return fmt.Errorf("row has %d fields, expected %d", len(cells), len(specs))
	}

	for i, spec := range specs {
		if !utf8.ValidString(cells[i]) {
			return fmt.Errorf("invalid UTF-8 in field %q", spec.Name)
		}
		raw := strings.TrimSpace(cells[i])

		if raw == "" {
			if spec.Required {
				return fmt.Errorf("empty required field %q", spec.Name)
			}
			continue
		}

		if err := ValidateCell(raw, spec); err != nil {
			return fmt.Errorf("invalid %s for %q: %q", fieldTypeName(spec.Type), spec.Name, raw)
		}
	}
	return nil
}

// ValidateCell validates a single non-empty cell value against a field specification.
func ValidateCell(value string, spec FieldSpec) error {
	switch spec.Type {
	case FieldInteger:
		if _, err := ParseCount(value); err != nil {
			return err
		}
	}
	return nil
}

// fieldTypeName returns a human-readable name for a field type.
func fieldTypeName(ft FieldType) string {
	switch ft {
	case FieldText:
		return "text"
	case FieldInteger:
		return "integer"
	default:
		return "value"
	}
}

func specNames(specs []FieldSpec) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}
