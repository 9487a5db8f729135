package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestSchemas_Registered(t *testing.T) {
	schemas := Schemas()
	if len(schemas) != 2 {
		t.Fatalf("Schemas() = %d entries, want 2", len(schemas))
	}
	if schemas[0].Type != RecordCensus || schemas[1].Type != RecordStateCode {
		t.Errorf("Schemas() order = [%s %s], want [census state_codes]", schemas[0].Type, schemas[1].Type)
	}

	info, ok := Lookup(RecordStateCode)
	if !ok {
		t.Fatal("Lookup(state_codes) ok = false")
	}
	if want := []string{"SrNo", "State Name", "TIN", "StateCode"}; !slices.Equal(info.Columns, want) {
		t.Errorf("Columns = %v, want %v", info.Columns, want)
	}
	if want := []string{"srNo", "stateName", "tin", "stateCode"}; !slices.Equal(info.Keys, want) {
		t.Errorf("Keys = %v, want %v", info.Keys, want)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() of duplicate type did not panic")
		}
	}()
	Register(CensusSchema.Info())
}

func TestParseRecordType(t *testing.T) {
	if got, err := ParseRecordType("census"); err != nil || got != RecordCensus {
		t.Errorf("ParseRecordType(census) = %q, %v", got, err)
	}
	if _, err := ParseRecordType("districts"); !errors.Is(err, ErrUnknownRecordType) {
		t.Errorf("ParseRecordType(districts) error = %v, want UnknownRecordType", err)
	}
}

// ============================================================================
// Template Tests
// ============================================================================

func TestTemplateCSV(t *testing.T) {
	for _, info := range Schemas() {
		t.Run(string(info.Type), func(t *testing.T) {
			data, err := TemplateCSV(info.Type)
			if err != nil {
				t.Fatalf("TemplateCSV() error = %v", err)
			}

			header, err := csv.NewReader(bytes.NewReader(data)).Read()
			if err != nil {
				t.Fatalf("read template: %v", err)
			}
			if !slices.Equal(header, info.Columns) {
				t.Errorf("template header = %v, want %v", header, info.Columns)
			}
		})
	}

	if _, err := TemplateCSV("districts"); !errors.Is(err, ErrUnknownRecordType) {
		t.Errorf("TemplateCSV(districts) error = %v, want UnknownRecordType", err)
	}
}

func TestTemplateCSV_LoadsAsEmpty(t *testing.T) {
	data, err := TemplateCSV(RecordCensus)
	if err != nil {
		t.Fatalf("TemplateCSV() error = %v", err)
	}
	n, err := Count(bytes.NewReader(data), CensusSchema)
	if err != nil || n != 0 {
		t.Errorf("Count(template) = %d, %v; want 0, nil", n, err)
	}
}

func TestTemplateFileName(t *testing.T) {
	tests := []struct {
		t    RecordType
		want string
	}{
		{t: RecordCensus, want: "State Census template.csv"},
		{t: RecordStateCode, want: "State Codes template.csv"},
		{t: "districts", want: "template.csv"},
	}

	for _, tt := range tests {
		got := TemplateFileName(tt.t)
		if got != tt.want {
			t.Errorf("TemplateFileName(%s) = %q, want %q", tt.t, got, tt.want)
		}
		if err := ValidateFileName(got); err != nil {
			t.Errorf("TemplateFileName(%s) fails validation: %v", tt.t, err)
		}
		if strings.ContainsAny(got, "/\\") {
			t.Errorf("TemplateFileName(%s) contains a separator", tt.t)
		}
	}
}
