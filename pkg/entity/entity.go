// Package entity defines the persisted business objects of the
// hospital administration system and their field catalogs. Each
// catalog lists the type's columns in backing-file order, base-type
// fields first, with typed accessors used by the codec and by
// find-by-field scans.
package entity

import (
	"github.com/carewise/hms/pkg/errors"
)

// assign stores a value of the expected Go type into dst, rejecting
// anything else. The codec hands Set values already converted to the
// field kind's Go type, so a mismatch indicates a wiring bug rather
// than bad input.
func assign[V any](dst *V, v any) error {
	val, ok := v.(V)
	if !ok {
		return errors.Newf(errors.ErrorTypeFormat,
			"unexpected value of type %T", v)
	}
	*dst = val
	return nil
}

// assignEnum stores a canonical symbolic name into a string-typed enum
// field.
func assignEnum[E ~string](dst *E, v any) error {
	s, ok := v.(string)
	if !ok {
		return errors.Newf(errors.ErrorTypeFormat,
			"unexpected enum value of type %T", v)
	}
	*dst = E(s)
	return nil
}
