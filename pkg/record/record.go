// Package record defines the data contract shared by every persisted
// entity: a unique string identifier plus a fixed, ordered set of named
// scalar fields described by a compile-time-registered catalog.
//
// The catalog replaces runtime reflection: each field pairs a name with
// a typed get/set accessor, so "field not found" can only occur for a
// caller-supplied name, never for a persisted column.
package record

import (
	"strings"

	"github.com/carewise/hms/pkg/errors"
)

// Record is implemented by every persisted entity type.
type Record interface {
	// GetID returns the unique identifier of the record.
	GetID() string
}

// Valid reports whether a record carries a non-empty identifier.
func Valid(r Record) bool {
	return r.GetID() != ""
}

// Kind enumerates the scalar kinds a persisted field may have.
type Kind int

const (
	// KindString is free text, stored verbatim.
	KindString Kind = iota
	// KindInt is a locale-invariant integer.
	KindInt
	// KindFloat is a floating-point value, rendered with two decimals.
	KindFloat
	// KindBool is "true"/"false", case-insensitive on read.
	KindBool
	// KindEnum is a symbolic name from a closed set, case-insensitive
	// on read and canonical case on write.
	KindEnum
	// KindDate is a calendar date without time, layout 2006-01-02.
	KindDate
	// KindDateTime is a timestamp at minute precision without zone,
	// layout 2006-01-02T15:04.
	KindDateTime
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Field describes one persisted field of a record type. Get returns the
// field's current value; Set assigns a value already converted to the
// kind's Go type (string, int, float64, bool, time.Time, or the enum's
// canonical symbolic name as a string).
type Field[T Record] struct {
	Name string
	Kind Kind

	// Enum lists the canonical symbolic names for KindEnum fields.
	Enum []string

	Get func(T) any
	Set func(T, any) error
}

// Catalog is the ordered, inheritance-aware field table for one record
// type. Base-type fields come first, in declaring order, followed by
// the type's own fields. The order is identical for encode and decode.
type Catalog[T Record] struct {
	// Name identifies the record type in errors and logs.
	Name string

	// Fields holds the full ordered descriptor list.
	Fields []Field[T]

	// New constructs a zero record ready for field assignment.
	New func() T

	// NewByID, when set, constructs the concrete variant of a closed
	// hierarchy from the identifier's prefix (e.g. staff roles). The
	// codec prefers it over New when decoding.
	NewByID func(id string) (T, error)

	index map[string]int
}

// Field resolves a field descriptor by name anywhere in the catalog.
func (c *Catalog[T]) Field(name string) (Field[T], bool) {
	if c.index == nil {
		c.index = make(map[string]int, len(c.Fields))
		for i, f := range c.Fields {
			c.index[f.Name] = i
		}
	}
	i, ok := c.index[name]
	if !ok {
		return Field[T]{}, false
	}
	return c.Fields[i], true
}

// Header returns the ordered column names for the catalog.
func (c *Catalog[T]) Header() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}

// CanonicalEnum matches raw text against the field's symbolic names,
// ignoring case and surrounding whitespace, and returns the canonical
// spelling.
func (f *Field[T]) CanonicalEnum(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	for _, name := range f.Enum {
		if strings.EqualFold(name, trimmed) {
			return name, nil
		}
	}
	return "", errors.Newf(errors.ErrorTypeFormat,
		"value %q does not match any symbolic name of field %s", raw, f.Name)
}
