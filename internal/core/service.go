package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/JonMunkholm/census/internal/logging"
	"github.com/google/uuid"
)

// DefaultMaxFileSize is the largest source file a load will read (10MB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// Options configures a Service.
type Options struct {
	Serializer  Serializer // Output format of the sorted views
	MaxFileSize int64      // Bytes; <= 0 means DefaultMaxFileSize
}

// Service composes validator, decoder, store, sorter and serializer.
//
// Each Load call fully reads its source before returning. A failed load
// leaves the stored collection for that type exactly as it was.
type Service struct {
	store       *Store
	serializer  Serializer
	maxFileSize int64
	now         func() time.Time
}

// NewService creates a Service with an empty store.
func NewService(opts Options) *Service {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.Serializer.Format == "" {
		opts.Serializer.Format = FormatJSON
	}

	return &Service{
		store:       NewStore(),
		serializer:  opts.Serializer,
		maxFileSize: opts.MaxFileSize,
		now:         time.Now,
	}
}

// Serializer returns the service's default serializer.
func (s *Service) Serializer() Serializer {
	return s.serializer
}

// LoadCensus loads a state census file and returns its record count.
func (s *Service) LoadCensus(ctx context.Context, path string) (int, error) {
	res, err := load(ctx, s, CensusSchema, path)
	return res.Count, err
}

// LoadStateCodes loads a state code file and returns its record count.
func (s *Service) LoadStateCodes(ctx context.Context, path string) (int, error) {
	res, err := load(ctx, s, StateCodeSchema, path)
	return res.Count, err
}

// Load loads path as the given record type.
func (s *Service) Load(ctx context.Context, t RecordType, path string) (LoadResult, error) {
	switch t {
	case RecordCensus:
		return load(ctx, s, CensusSchema, path)
	case RecordStateCode:
		return load(ctx, s, StateCodeSchema, path)
	default:
		return LoadResult{}, newError(KindUnknownRecordType, "load", "unknown record type %q", t)
	}
}

// Count validates path as the given record type and returns its record count
// without retaining records. The store is not touched.
func (s *Service) Count(ctx context.Context, t RecordType, path string) (int, error) {
	switch t {
	case RecordCensus:
		return count(ctx, s, CensusSchema, path)
	case RecordStateCode:
		return count(ctx, s, StateCodeSchema, path)
	default:
		return 0, newError(KindUnknownRecordType, "count", "unknown record type %q", t)
	}
}

// Census returns the most recently loaded census collection.
func (s *Service) Census() (Collection[CensusRecord], bool) {
	return Current[CensusRecord](s.store, RecordCensus)
}

// StateCodes returns the most recently loaded state code collection.
func (s *Service) StateCodes() (Collection[StateCodeRecord], bool) {
	return Current[StateCodeRecord](s.store, RecordStateCode)
}

// Loaded returns the number of records currently stored for t.
func (s *Service) Loaded(t RecordType) int {
	return s.store.Len(t)
}

// Reset discards the stored collection for t and returns how many records
// it held. Sorting t afterwards fails with NoData until the next load.
func (s *Service) Reset(ctx context.Context, t RecordType) (int, error) {
	if _, ok := Lookup(t); !ok {
		return 0, newError(KindUnknownRecordType, "reset", "unknown record type %q", t)
	}
	n := s.store.Reset(t)
	logging.WithFields(ctx, "record_type", t).Info("collection reset", "discarded", n)
	return n, nil
}

// load runs validate, decode and store for one schema.
func load[T any](ctx context.Context, s *Service, schema Schema[T], path string) (LoadResult, error) {
	logger := logging.WithFields(ctx, "record_type", schema.Type, "path", path)
	start := s.now()

	var records []T
	n, err := s.withSource(ctx, path, func(r io.Reader) error {
		var err error
		records, err = Decode(r, schema)
		return err
	})
	if err != nil {
		logger.Warn("load failed", "kind", KindOf(err).String(), "error", err)
		return LoadResult{}, err
	}

	c := Collection[T]{
		ID:       uuid.New(),
		Type:     schema.Type,
		Source:   path,
		LoadedAt: s.now(),
		Records:  records,
	}
	size := Put(s.store, c)

	logger.Info("load complete",
		"load_id", c.ID.String(),
		"records", size,
		"bytes", n,
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)

	return LoadResult{LoadID: c.ID.String(), RecordType: schema.Type, Count: size}, nil
}

// count runs validate and a counting-only decode for one schema.
func count[T any](ctx context.Context, s *Service, schema Schema[T], path string) (int, error) {
	var total int
	_, err := s.withSource(ctx, path, func(r io.Reader) error {
		var err error
		total, err = Count(r, schema)
		return err
	})
	if err != nil {
		logging.FromContext(ctx).Warn("count failed",
			"record_type", schema.Type, "path", path, "kind", KindOf(err).String(), "error", err)
		return 0, err
	}
	return total, nil
}

// withSource validates the file name, opens path and passes the wrapped
// reader to fn. The file is closed before withSource returns.
// Returns the number of bytes read from the file.
func (s *Service) withSource(ctx context.Context, path string, fn func(io.Reader) error) (int64, error) {
	if err := ValidateFileName(path); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, &Error{Kind: KindSourceUnavailable, Op: "open", Path: path, Msg: "operation cancelled", Err: err}
	}

	file, err := os.Open(path)
	if err != nil {
		msg := "open file"
		if errors.Is(err, os.ErrNotExist) {
			msg = "file not found"
		}
		return 0, &Error{Kind: KindSourceUnavailable, Op: "open", Path: path, Msg: msg, Err: err}
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return 0, &Error{Kind: KindSourceUnavailable, Op: "open", Path: path, Msg: "stat file", Err: err}
	}
	if stat.IsDir() {
		return 0, &Error{Kind: KindSourceUnavailable, Op: "open", Path: path, Msg: "path is a directory"}
	}
	if stat.Size() > s.maxFileSize {
		return 0, &Error{
			Kind: KindSourceUnavailable,
			Op:   "open",
			Path: path,
			Msg:  fmt.Sprintf("file too large: %d bytes exceeds limit of %d", stat.Size(), s.maxFileSize),
		}
	}

	r, counter := WrapSource(file)
	if err := fn(r); err != nil {
		return counter.BytesRead, withPath(err, path)
	}
	return counter.BytesRead, nil
}

// withPath stamps path onto a pipeline error that lacks one.
func withPath(err error, path string) error {
	var e *Error
	if errors.As(err, &e) && e.Path == "" {
		cp := *e
		cp.Path = path
		return &cp
	}
	return err
}

// debugLog is the logger for read-only accessors, which carry no context.
func debugLog() *slog.Logger {
	return slog.Default()
}
