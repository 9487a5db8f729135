package core

import "strings"

// Schema describes how to decode one record type from CSV.
// One Schema value exists per concrete record type; the decoder and sorter
// are instantiated over T at compile time.
type Schema[T any] struct {
	Type   RecordType
	Label  string
	Fields []FieldSpec
	Build  func(row Row) (T, error)
	Key    func(T) string // Unique key within one load; nil disables the check
}

// Columns returns the expected header, in declaration order.
func (s Schema[T]) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Info returns the registry entry for the schema.
func (s Schema[T]) Info() SchemaInfo {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return SchemaInfo{
		Type:    s.Type,
		Label:   s.Label,
		Columns: s.Columns(),
		Keys:    keys,
	}
}

// Row is a validated data row. Cells are positional and match Schema.Fields.
// The decoder attaches the line number to any Build error.
type Row struct {
	cells []string
}

// Text returns the trimmed cell at position i.
func (r Row) Text(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// Int returns the integer cell at position i.
// Cells are validated before Build is called, so a parse failure here
// means the schema declared the wrong FieldType.
func (r Row) Int(i int) (int64, error) {
	return ParseCount(r.Text(i))
}

// CensusSchema is the State,Population,AreaInSqKm,DensityPerSqKm file.
var CensusSchema = Schema[CensusRecord]{
	Type:  RecordCensus,
	Label: "State Census",
	Fields: []FieldSpec{
		{Name: "State", Key: "state", Type: FieldText, Required: true},
		{Name: "Population", Key: "population", Type: FieldInteger, Required: true},
		{Name: "AreaInSqKm", Key: "areaInSqKm", Type: FieldInteger, Required: true},
		{Name: "DensityPerSqKm", Key: "densityPerSqKm", Type: FieldInteger, Required: true},
	},
	Build: buildCensusRecord,
	Key:   func(r CensusRecord) string { return r.State },
}

// StateCodeSchema is the SrNo,State Name,TIN,StateCode file.
var StateCodeSchema = Schema[StateCodeRecord]{
	Type:  RecordStateCode,
	Label: "State Codes",
	Fields: []FieldSpec{
		{Name: "SrNo", Key: "srNo", Type: FieldInteger, Required: true},
		{Name: "State Name", Key: "stateName", Type: FieldText, Required: true},
		{Name: "TIN", Key: "tin", Type: FieldInteger, Required: true},
		{Name: "StateCode", Key: "stateCode", Type: FieldText, Required: true},
	},
	Build: buildStateCodeRecord,
	Key:   func(r StateCodeRecord) string { return r.StateCode },
}

func buildCensusRecord(row Row) (CensusRecord, error) {
	rec := CensusRecord{State: row.Text(0)}

	var err error
	if rec.Population, err = row.Int(1); err != nil {
		return CensusRecord{}, err
	}
	if rec.AreaInSqKm, err = row.Int(2); err != nil {
		return CensusRecord{}, err
	}
	if rec.DensityPerSqKm, err = row.Int(3); err != nil {
		return CensusRecord{}, err
	}
	return rec, nil
}

func buildStateCodeRecord(row Row) (StateCodeRecord, error) {
	rec := StateCodeRecord{
		StateName: row.Text(1),
		StateCode: row.Text(3),
	}

	var err error
	if rec.SrNo, err = row.Int(0); err != nil {
		return StateCodeRecord{}, err
	}
	if rec.TIN, err = row.Int(2); err != nil {
		return StateCodeRecord{}, err
	}
	return rec, nil
}

func init() {
	Register(CensusSchema.Info())
	Register(StateCodeSchema.Info())
}
