package core

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

const censusHeader = "State,Population,AreaInSqKm,DensityPerSqKm\n"

// ============================================================================
// Decode Tests
// ============================================================================

func TestDecode_Census(t *testing.T) {
	input := censusHeader +
		"Bihar,103804637,94163,1102\n" +
		"Andhra Pradesh,84665533,275045,308\n" +
		"Goa,1457723,3702,394\n"

	records, err := Decode(strings.NewReader(input), CensusSchema)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []CensusRecord{
		{State: "Bihar", Population: 103804637, AreaInSqKm: 94163, DensityPerSqKm: 1102},
		{State: "Andhra Pradesh", Population: 84665533, AreaInSqKm: 275045, DensityPerSqKm: 308},
		{State: "Goa", Population: 1457723, AreaInSqKm: 3702, DensityPerSqKm: 394},
	}
	if len(records) != len(want) {
		t.Fatalf("Decode() returned %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestDecode_StateCodes(t *testing.T) {
	input := "SrNo,State Name,TIN,StateCode\n" +
		"1,Andaman and Nicobar Islands,35,AN\n" +
		"2, Andhra Pradesh New ,37, AD\n"

	records, err := Decode(strings.NewReader(input), StateCodeSchema)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Decode() returned %d records, want 2", len(records))
	}

	got := records[1]
	want := StateCodeRecord{SrNo: 2, StateName: "Andhra Pradesh New", TIN: 37, StateCode: "AD"}
	if got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

func TestDecode_HeaderOnly(t *testing.T) {
	records, err := Decode(strings.NewReader(censusHeader), CensusSchema)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Decode() returned %d records, want 0", len(records))
	}
}

func TestDecode_SkipsBOM(t *testing.T) {
	input := "\xEF\xBB\xBF" + censusHeader + "Goa,1457723,3702,394\n"
	r, _ := WrapSource(strings.NewReader(input))

	records, err := Decode(r, CensusSchema)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(records) != 1 || records[0].State != "Goa" {
		t.Errorf("Decode() = %+v, want one Goa record", records)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantLine int
		wantMsg  string
	}{
		{
			name:     "empty input",
			input:    "",
			wantKind: KindMalformedSchema,
			wantMsg:  "not a proper CSV",
		},
		{
			name:     "incorrect header",
			input:    "State,Population,Area,Density\nGoa,1457723,3702,394\n",
			wantKind: KindMalformedSchema,
			wantLine: 1,
			wantMsg:  "not a proper CSV",
		},
		{
			name:     "semicolon delimiter",
			input:    "State;Population;AreaInSqKm;DensityPerSqKm\nGoa;1457723;3702;394\n",
			wantKind: KindMalformedSchema,
			wantLine: 1,
			wantMsg:  "not a proper CSV",
		},
		{
			name:     "row with too few fields",
			input:    censusHeader + "Goa,1457723,3702,394\nBihar,103804637,94163\n",
			wantKind: KindMalformedRow,
			wantLine: 3,
			wantMsg:  "row has 3 fields, expected 4",
		},
		{
			name:     "row with too many fields",
			input:    censusHeader + "Goa,1457723,3702,394,extra\n",
			wantKind: KindMalformedRow,
			wantLine: 2,
			wantMsg:  "row has 5 fields, expected 4",
		},
		{
			name:     "partial integer",
			input:    censusHeader + "Goa,1457723abc,3702,394\n",
			wantKind: KindMalformedRow,
			wantLine: 2,
			wantMsg:  `invalid integer for "Population"`,
		},
		{
			name:     "negative integer",
			input:    censusHeader + "Goa,1457723,-3702,394\n",
			wantKind: KindMalformedRow,
			wantLine: 2,
			wantMsg:  `invalid integer for "AreaInSqKm"`,
		},
		{
			name:     "empty state",
			input:    censusHeader + ",1457723,3702,394\n",
			wantKind: KindMalformedRow,
			wantLine: 2,
			wantMsg:  `empty required field "State"`,
		},
		{
			name:     "duplicate state",
			input:    censusHeader + "Goa,1457723,3702,394\nBihar,103804637,94163,1102\nGoa,1,1,1\n",
			wantKind: KindMalformedRow,
			wantLine: 4,
			wantMsg:  `duplicate key "Goa" (first seen on line 2)`,
		},
		{
			name:     "invalid utf-8",
			input:    censusHeader + "G\xffa,1457723,3702,394\n",
			wantKind: KindMalformedRow,
			wantLine: 2,
			wantMsg:  `invalid UTF-8 in field "State"`,
		},
		{
			name:     "bad quoting",
			input:    censusHeader + "\"Goa\"x,1457723,3702,394\n",
			wantKind: KindMalformedRow,
			wantLine: 2,
			wantMsg:  "malformed row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Decode(strings.NewReader(tt.input), CensusSchema)
			if err == nil {
				t.Fatalf("Decode() expected error, got %d records", len(records))
			}
			if records != nil {
				t.Errorf("Decode() returned %d records alongside an error", len(records))
			}

			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("Decode() error type = %T, want *Error", err)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if tt.wantLine != 0 && e.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", e.Line, tt.wantLine)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDecode_ReadFailureIsSourceUnavailable(t *testing.T) {
	r := iotest.ErrReader(errors.New("device not ready"))

	_, err := Decode(r, CensusSchema)
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("Decode() kind = %v, want SourceUnavailable", KindOf(err))
	}
}

// ============================================================================
// Records / Count Tests
// ============================================================================

func TestRecords_StopsEarly(t *testing.T) {
	input := censusHeader +
		"Goa,1457723,3702,394\n" +
		"Bihar,oops,94163,1102\n"

	var got []string
	for rec, err := range Records(strings.NewReader(input), CensusSchema) {
		if err != nil {
			t.Fatalf("unexpected error before break: %v", err)
		}
		got = append(got, rec.State)
		break
	}

	if len(got) != 1 || got[0] != "Goa" {
		t.Errorf("Records() yielded %v, want [Goa]", got)
	}
}

func TestRecords_ErrorIsLast(t *testing.T) {
	input := censusHeader +
		"Goa,1457723,3702,394\n" +
		"Bihar,oops,94163,1102\n" +
		"Sikkim,607688,7096,86\n"

	var states []string
	var errs int
	for rec, err := range Records(strings.NewReader(input), CensusSchema) {
		if err != nil {
			errs++
			continue
		}
		states = append(states, rec.State)
	}

	if errs != 1 {
		t.Errorf("got %d errors, want 1", errs)
	}
	if len(states) != 1 || states[0] != "Goa" {
		t.Errorf("states = %v, want [Goa]", states)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "header only", input: censusHeader, want: 0},
		{name: "two rows", input: censusHeader + "Goa,1457723,3702,394\nSikkim,607688,7096,86\n", want: 2},
		{name: "blank lines ignored", input: censusHeader + "\nGoa,1457723,3702,394\n\n", want: 1},
		{name: "bad row", input: censusHeader + "Goa,1457723,3702\n", wantErr: true},
		{name: "bad header", input: "Name,Population\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(strings.NewReader(tt.input), CensusSchema)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Count() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}
