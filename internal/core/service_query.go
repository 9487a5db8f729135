package core

import (
	"cmp"
	"strings"
)

// ParseSortField resolves a sort field name, case-insensitively.
func ParseSortField(s string) (SortField, error) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortFields() {
		if f == known {
			return f, nil
		}
	}
	return "", newError(KindUnknownSortField, "sort", "unknown sort field %q", s)
}

// RecordType returns the record type a sort field belongs to.
func (f SortField) RecordType() RecordType {
	if f == SortByCode {
		return RecordStateCode
	}
	return RecordCensus
}

// SortedByName returns census records ordered by state name, ascending.
func (s *Service) SortedByName() (string, error) {
	return s.Sorted(SortByState, s.serializer)
}

// SortedByCode returns state code records ordered by state code, ascending.
func (s *Service) SortedByCode() (string, error) {
	return s.Sorted(SortByCode, s.serializer)
}

// SortedByPopulationDesc returns census records ordered by population, largest first.
func (s *Service) SortedByPopulationDesc() (string, error) {
	return s.Sorted(SortByPopulation, s.serializer)
}

// SortedByDensityDesc returns census records ordered by density per sq km, largest first.
func (s *Service) SortedByDensityDesc() (string, error) {
	return s.Sorted(SortByDensity, s.serializer)
}

// SortedByAreaDesc returns census records ordered by area, largest first.
func (s *Service) SortedByAreaDesc() (string, error) {
	return s.Sorted(SortByArea, s.serializer)
}

// Sorted returns the view keyed on field, rendered with ser.
func (s *Service) Sorted(field SortField, ser Serializer) (string, error) {
	if field == SortByCode {
		records, err := s.SortedStateCodes()
		if err != nil {
			return "", err
		}
		return serializeView(ser, records)
	}

	records, err := s.SortedCensus(field)
	if err != nil {
		return "", err
	}
	return serializeView(ser, records)
}

// SortedCensus returns census records ordered by field.
// State is ascending; population, density and area are descending.
func (s *Service) SortedCensus(field SortField) ([]CensusRecord, error) {
	switch field {
	case SortByState:
		return sortedView(s, RecordCensus, func(r CensusRecord) string { return r.State }, Ascending)
	case SortByPopulation:
		return sortedView(s, RecordCensus, func(r CensusRecord) int64 { return r.Population }, Descending)
	case SortByDensity:
		return sortedView(s, RecordCensus, func(r CensusRecord) int64 { return r.DensityPerSqKm }, Descending)
	case SortByArea:
		return sortedView(s, RecordCensus, func(r CensusRecord) int64 { return r.AreaInSqKm }, Descending)
	default:
		return nil, newError(KindUnknownSortField, "sort", "census records cannot be sorted by %q", field)
	}
}

// SortedStateCodes returns state code records ordered by state code, ascending.
func (s *Service) SortedStateCodes() ([]StateCodeRecord, error) {
	return sortedView(s, RecordStateCode, func(r StateCodeRecord) string { return r.StateCode }, Ascending)
}

// sortedView sorts a copy of the stored collection for t.
// Fails with NoData if nothing was loaded or the last load was empty.
func sortedView[T any, K cmp.Ordered](s *Service, t RecordType, key func(T) K, order Order) ([]T, error) {
	c, ok := Current[T](s.store, t)
	if !ok || c.Len() == 0 {
		return nil, &Error{Kind: KindNoData, Op: "sort", Msg: "No csv data for " + string(t)}
	}

	debugLog().Debug("sorting collection",
		"record_type", t,
		"load_id", c.ID.String(),
		"records", c.Len(),
		"order", order.String(),
	)
	return SortBy(c.Records, key, order), nil
}

func serializeView[T any](ser Serializer, records []T) (string, error) {
	text, err := Serialize(ser, records)
	if err != nil {
		return "", &Error{Op: "serialize", Msg: "serialize records", Err: err}
	}
	return text, nil
}
