package core

import (
	"slices"
	"testing"
)

func states(records []CensusRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.State
	}
	return out
}

func TestSortBy(t *testing.T) {
	input := []CensusRecord{
		{State: "Bihar", Population: 10, DensityPerSqKm: 5},
		{State: "Andhra Pradesh", Population: 50, DensityPerSqKm: 7},
		{State: "Goa", Population: 30, DensityPerSqKm: 5},
		{State: "Kerala", Population: 20, DensityPerSqKm: 5},
	}

	byState := func(r CensusRecord) string { return r.State }
	byPopulation := func(r CensusRecord) int64 { return r.Population }
	byDensity := func(r CensusRecord) int64 { return r.DensityPerSqKm }

	tests := []struct {
		name string
		got  []CensusRecord
		want []string
	}{
		{
			name: "state ascending",
			got:  SortBy(input, byState, Ascending),
			want: []string{"Andhra Pradesh", "Bihar", "Goa", "Kerala"},
		},
		{
			name: "state descending",
			got:  SortBy(input, byState, Descending),
			want: []string{"Kerala", "Goa", "Bihar", "Andhra Pradesh"},
		},
		{
			name: "population descending",
			got:  SortBy(input, byPopulation, Descending),
			want: []string{"Andhra Pradesh", "Goa", "Kerala", "Bihar"},
		},
		{
			name: "ties keep input order ascending",
			got:  SortBy(input, byDensity, Ascending),
			want: []string{"Bihar", "Goa", "Kerala", "Andhra Pradesh"},
		},
		{
			name: "ties reverse input order descending",
			got:  SortBy(input, byDensity, Descending),
			want: []string{"Andhra Pradesh", "Kerala", "Goa", "Bihar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := states(tt.got); !slices.Equal(got, tt.want) {
				t.Errorf("SortBy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	input := []CensusRecord{{State: "Goa"}, {State: "Bihar"}, {State: "Assam"}}
	before := slices.Clone(input)

	out := SortBy(input, func(r CensusRecord) string { return r.State }, Ascending)

	if !slices.Equal(input, before) {
		t.Errorf("input mutated: %v, want %v", input, before)
	}
	out[0].State = "changed"
	if input[2].State != "Assam" {
		t.Error("result shares backing array with input")
	}
}

func TestSortBy_Empty(t *testing.T) {
	if got := SortBy([]CensusRecord{}, func(r CensusRecord) string { return r.State }, Descending); len(got) != 0 {
		t.Errorf("SortBy(empty) = %v, want empty", got)
	}
	if got := SortBy[CensusRecord](nil, func(r CensusRecord) string { return r.State }, Ascending); len(got) != 0 {
		t.Errorf("SortBy(nil) = %v, want empty", got)
	}
}

func TestOrder_String(t *testing.T) {
	if Ascending.String() != "asc" || Descending.String() != "desc" {
		t.Errorf("Order strings = %q, %q", Ascending, Descending)
	}
}
