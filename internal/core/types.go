package core

import (
	"time"

	"github.com/google/uuid"
)

// RecordType identifies a supported record schema.
type RecordType string

const (
	RecordCensus    RecordType = "census"
	RecordStateCode RecordType = "state_codes"
)

// FieldType represents the expected data type for a CSV field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
)

// FieldSpec defines validation rules for a single CSV column.
type FieldSpec struct {
	Name     string    // Column header name (must match CSV exactly, case-sensitive)
	Key      string    // Serialized field name
	Type     FieldType // Expected data type
	Required bool      // Value must be non-empty
}

// CensusRecord is one row of the state census file.
type CensusRecord struct {
	State          string `json:"state" yaml:"state"`
	Population     int64  `json:"population" yaml:"population"`
	AreaInSqKm     int64  `json:"areaInSqKm" yaml:"areaInSqKm"`
	DensityPerSqKm int64  `json:"densityPerSqKm" yaml:"densityPerSqKm"`
}

// StateCodeRecord is one row of the state code lookup file.
type StateCodeRecord struct {
	SrNo      int64  `json:"srNo" yaml:"srNo"`
	StateName string `json:"stateName" yaml:"stateName"`
	TIN       int64  `json:"tin" yaml:"tin"`
	StateCode string `json:"stateCode" yaml:"stateCode"`
}

// Collection is the result of exactly one load call.
// It is replaced wholesale by the next load of the same record type.
type Collection[T any] struct {
	ID       uuid.UUID
	Type     RecordType
	Source   string
	LoadedAt time.Time
	Records  []T
}

// Len returns the number of records in the collection.
func (c Collection[T]) Len() int {
	return len(c.Records)
}

// Order is the direction of a sort.
type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// SortField names a field a sorted view can be keyed on.
type SortField string

const (
	SortByState      SortField = "state"
	SortByCode       SortField = "code"
	SortByPopulation SortField = "population"
	SortByDensity    SortField = "density"
	SortByArea       SortField = "area"
)

// SortFields lists every supported sort field in display order.
func SortFields() []SortField {
	return []SortField{SortByState, SortByCode, SortByPopulation, SortByDensity, SortByArea}
}

// LoadResult describes a completed load.
type LoadResult struct {
	LoadID     string     `json:"loadId"`
	RecordType RecordType `json:"recordType"`
	Count      int        `json:"count"`
}
