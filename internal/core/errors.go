package core

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindWrongFileType
	KindSourceUnavailable
	KindMalformedSchema
	KindMalformedRow
	KindNoData
	KindUnknownRecordType
	KindUnknownSortField
)

var kindNames = map[Kind]string{
	KindUnknown:           "Unknown",
	KindWrongFileType:     "WrongFileType",
	KindSourceUnavailable: "SourceUnavailable",
	KindMalformedSchema:   "MalformedSchema",
	KindMalformedRow:      "MalformedRow",
	KindNoData:            "NoData",
	KindUnknownRecordType: "UnknownRecordType",
	KindUnknownSortField:  "UnknownSortField",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors, one per kind. errors.Is matches any *Error of the same kind.
var (
	ErrWrongFileType     = &Error{Kind: KindWrongFileType}
	ErrSourceUnavailable = &Error{Kind: KindSourceUnavailable}
	ErrMalformedSchema   = &Error{Kind: KindMalformedSchema}
	ErrMalformedRow      = &Error{Kind: KindMalformedRow}
	ErrNoData            = &Error{Kind: KindNoData}
	ErrUnknownRecordType = &Error{Kind: KindUnknownRecordType}
	ErrUnknownSortField  = &Error{Kind: KindUnknownSortField}
)

// Error is the single error type returned by the pipeline.
type Error struct {
	Kind Kind   // Machine-checkable classification
	Op   string // Operation that failed: "validate", "decode", "sort", ...
	Path string // Source file, if any
	Line int    // 1-indexed CSV line, if any
	Msg  string // Human-readable description
	Err  error  // Underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}

	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s: %s:%d: %s", e.Op, e.Path, e.Line, msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Path, msg)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, msg)
	default:
		return msg
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// newError builds an *Error with a formatted message.
func newError(kind Kind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
// Returns KindUnknown for nil or foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
