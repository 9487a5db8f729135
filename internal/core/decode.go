package core

// decode.go turns a CSV text stream into typed records.
//
// The first row is the header and must match the schema exactly. Every
// following row must have exactly len(schema.Fields) cells, each valid for
// its FieldSpec. The decoder never skips a bad row: the first failure ends
// the sequence.

import (
	"encoding/csv"
	"errors"
	"io"
	"iter"
)

// newCSVReader configures encoding/csv for schema-checked decoding.
// Field counts are checked by ValidateRow so the error carries the schema arity.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return cr
}

// Records returns a lazy, single-pass sequence of records decoded from r.
// The sequence yields a non-nil error at most once, as its final element.
// Only the unique keys seen so far are retained, never the records.
func Records[T any](r io.Reader, s Schema[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		cr := newCSVReader(r)

		header, err := cr.Read()
		if err != nil {
			yield(zero, headerError(err))
			return
		}
		if err := ValidateHeaders(header, s.Fields); err != nil {
			yield(zero, &Error{Kind: KindMalformedSchema, Op: "decode", Line: 1, Msg: "not a proper CSV", Err: err})
			return
		}

		seen := make(map[string]int)
		for {
			cells, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(zero, rowReadError(err))
				return
			}

			line, _ := cr.FieldPos(0)
			if err := ValidateRow(cells, s.Fields); err != nil {
				yield(zero, &Error{Kind: KindMalformedRow, Op: "decode", Line: line, Msg: "malformed row", Err: err})
				return
			}

			rec, err := s.Build(Row{cells: cells})
			if err != nil {
				yield(zero, &Error{Kind: KindMalformedRow, Op: "decode", Line: line, Msg: "malformed row", Err: err})
				return
			}

			if s.Key != nil {
				key := s.Key(rec)
				if first, dup := seen[key]; dup {
					yield(zero, newRowError(line, "duplicate key %q (first seen on line %d)", key, first))
					return
				}
				seen[key] = line
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Decode reads every record from r into a slice.
// On any error no records are returned.
func Decode[T any](r io.Reader, s Schema[T]) ([]T, error) {
	var out []T
	for rec, err := range Records(r, s) {
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Count validates every row of r and returns the number of records,
// without retaining them.
func Count[T any](r io.Reader, s Schema[T]) (int, error) {
	n := 0
	for _, err := range Records(r, s) {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// headerError classifies a failure to read the header row.
func headerError(err error) error {
	if errors.Is(err, io.EOF) {
		return &Error{Kind: KindMalformedSchema, Op: "decode", Msg: "not a proper CSV: missing header"}
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &Error{Kind: KindMalformedSchema, Op: "decode", Line: pe.Line, Msg: "not a proper CSV", Err: pe.Err}
	}
	return &Error{Kind: KindSourceUnavailable, Op: "read", Msg: "read header", Err: err}
}

// rowReadError classifies a failure to read a data row.
// Parse errors are the row's fault; anything else is the source's.
func rowReadError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &Error{Kind: KindMalformedRow, Op: "decode", Line: pe.Line, Msg: "malformed row", Err: pe.Err}
	}
	return &Error{Kind: KindSourceUnavailable, Op: "read", Msg: "read row", Err: err}
}

func newRowError(line int, format string, args ...any) *Error {
	e := newError(KindMalformedRow, "decode", format, args...)
	e.Line = line
	return e
}
