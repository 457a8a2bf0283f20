// Package store provides the generic keyed collection backing every
// record type: an in-memory map from identifier to record, loaded from
// and persisted to one delimited text file through a codec.
//
// The model is single-threaded and synchronous. Every mutating call
// rewrites the whole backing file; a failed rewrite is logged and the
// in-memory state stands, so memory and disk may diverge until the next
// successful save.
package store

import (
	"fmt"
	"iter"
	"os"

	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/codec"
	"github.com/carewise/hms/pkg/errors"
	"github.com/carewise/hms/pkg/idgen"
	"github.com/carewise/hms/pkg/logger"
	"github.com/carewise/hms/pkg/metrics"
	"github.com/carewise/hms/pkg/record"
)

// Store is the file-backed collection for exactly one record type. The
// backing path, the type prefix, and the codec are fixed at
// construction and never change.
type Store[T record.Record] struct {
	path    string
	prefix  string
	codec   *codec.Codec[T]
	records map[string]T
	log     *zap.Logger
}

// Open constructs a store and performs the initial load. A load failure
// is fatal to construction: the caller must treat it as a startup error
// for the whole subsystem.
func Open[T record.Record](path, prefix string, c *codec.Codec[T]) (*Store[T], error) {
	s := &Store[T]{
		path:    path,
		prefix:  prefix,
		codec:   c,
		records: make(map[string]T),
		log: logger.With(
			zap.String("store", c.Catalog().Name),
			zap.String("path", path),
		),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the record type name the store manages.
func (s *Store[T]) Name() string {
	return s.codec.Catalog().Name
}

// Prefix returns the store's own identifier prefix.
func (s *Store[T]) Prefix() string {
	return s.prefix
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the backing file fully, replacing the in-memory contents.
// A missing file, an empty header, or any malformed row fails the load.
func (s *Store[T]) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		metrics.StoreLoads.WithLabelValues(s.Name(), "failure").Inc()
		return errors.Wrap(err, errors.ErrorTypeStorage,
			fmt.Sprintf("failed to open %s file", s.Name()))
	}
	defer f.Close()

	records, err := s.codec.DecodeAll(f)
	if err != nil {
		metrics.StoreLoads.WithLabelValues(s.Name(), "failure").Inc()
		return err
	}

	s.records = make(map[string]T, len(records))
	for _, rec := range records {
		s.records[rec.GetID()] = rec
	}

	metrics.StoreLoads.WithLabelValues(s.Name(), "success").Inc()
	metrics.StoreRecords.WithLabelValues(s.Name()).Set(float64(len(s.records)))
	s.log.Debug("store loaded", zap.Int("records", len(s.records)))
	return nil
}

// Save serializes the whole map to the backing file, overwriting it.
// The error is returned for callers that want it, but mutating
// operations log it and carry on with the in-memory change.
func (s *Store[T]) Save() error {
	f, err := os.Create(s.path)
	if err != nil {
		metrics.StoreSaves.WithLabelValues(s.Name(), "failure").Inc()
		return errors.Wrap(err, errors.ErrorTypeStorage,
			fmt.Sprintf("failed to create %s file", s.Name()))
	}

	if err := s.codec.EncodeAll(f, s.List()); err != nil {
		f.Close()
		metrics.StoreSaves.WithLabelValues(s.Name(), "failure").Inc()
		return err
	}
	if err := f.Close(); err != nil {
		metrics.StoreSaves.WithLabelValues(s.Name(), "failure").Inc()
		return errors.Wrap(err, errors.ErrorTypeStorage,
			fmt.Sprintf("failed to close %s file", s.Name()))
	}

	metrics.StoreSaves.WithLabelValues(s.Name(), "success").Inc()
	return nil
}

// Add inserts or replaces the entry keyed by the record's identifier
// and persists. A second add with the same ID silently replaces the
// first.
func (s *Store[T]) Add(rec T) {
	s.records[rec.GetID()] = rec
	s.persist()
}

// Remove deletes the entry with the record's identifier and persists.
// No-op if the identifier is absent.
func (s *Store[T]) Remove(rec T) {
	delete(s.records, rec.GetID())
	s.persist()
}

// Get returns the record for id. The second result reports presence;
// an unknown identifier is not an error.
func (s *Store[T]) Get(id string) (T, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Update replaces the entry only when the identifier already exists.
// Otherwise the store is left untouched; distinguishing insert from
// update is the caller's responsibility.
func (s *Store[T]) Update(rec T) {
	if _, ok := s.records[rec.GetID()]; !ok {
		return
	}
	s.records[rec.GetID()] = rec
	s.persist()
}

// FindByField scans all records and returns those whose named field
// equals value. An unknown field name is logged once per scan and
// yields an empty result rather than an error.
func (s *Store[T]) FindByField(name string, value any) []T {
	metrics.FieldScans.WithLabelValues(s.Name(), name).Inc()

	field, ok := s.codec.Catalog().Field(name)
	if !ok {
		s.log.Warn("find-by-field on undeclared field",
			zap.String("field", name))
		return nil
	}

	var matches []T
	for _, rec := range s.records {
		if field.Get(rec) == value {
			matches = append(matches, rec)
		}
	}
	return matches
}

// All returns a lazy, restartable sequence over the current in-memory
// records. Mutating the store during iteration is undefined, consistent
// with the single-threaded model.
func (s *Store[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, rec := range s.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// List returns all records as a slice in map iteration order.
func (s *Store[T]) List() []T {
	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out
}

// Len returns the number of records in the store.
func (s *Store[T]) Len() int {
	return len(s.records)
}

// AllIDs returns every key in the store.
func (s *Store[T]) AllIDs() []string {
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	return ids
}

// NextID allocates the next identifier under the given prefix from the
// store's live ID set.
func (s *Store[T]) NextID(prefix string) string {
	metrics.IDsAllocated.WithLabelValues(prefix).Inc()
	return idgen.Next(s.AllIDs(), prefix)
}

// NextTypeID allocates the next identifier under the store's own
// prefix.
func (s *Store[T]) NextTypeID() string {
	return s.NextID(s.prefix)
}

// persist saves after a mutation, logging failures without rolling the
// in-memory change back.
func (s *Store[T]) persist() {
	metrics.StoreRecords.WithLabelValues(s.Name()).Set(float64(len(s.records)))
	if err := s.Save(); err != nil {
		s.log.Error("failed to persist store, in-memory state diverges from disk",
			zap.Error(err))
	}
}
