package core

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// TemplateCSV returns a header-only CSV file for the record type.
// A file built from this template passes header validation.
func TemplateCSV(t RecordType) ([]byte, error) {
	info, ok := Lookup(t)
	if !ok {
		return nil, newError(KindUnknownRecordType, "template", "unknown record type %q", t)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(info.Columns); err != nil {
		return nil, fmt.Errorf("write template header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush template: %w", err)
	}
	return buf.Bytes(), nil
}

// TemplateFileName returns a download file name that passes ValidateFileName.
func TemplateFileName(t RecordType) string {
	info, ok := Lookup(t)
	if !ok {
		return "template.csv"
	}
	name := make([]rune, 0, len(info.Label))
	for _, r := range info.Label {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' {
			name = append(name, r)
		}
	}
	if len(name) == 0 {
		return "template.csv"
	}
	return string(name) + " template.csv"
}
