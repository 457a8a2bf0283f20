// Package codec converts between delimited text rows and typed records,
// driven entirely by a record catalog. The format is plain comma-
// delimited text with a header line and no quoting or escaping; an
// empty cell stands for an absent value.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/carewise/hms/pkg/errors"
	"github.com/carewise/hms/pkg/record"
)

// Layouts for temporal cells. Timestamps carry no zone and are stored
// at minute precision.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04"
)

// Delimiter separates cells within a row. Field values must not contain
// it; the format has no escaping.
const Delimiter = ","

// Codec is a bidirectional row mapper for one record type.
type Codec[T record.Record] struct {
	catalog *record.Catalog[T]
}

// New creates a codec bound to a catalog.
func New[T record.Record](catalog *record.Catalog[T]) *Codec[T] {
	return &Codec[T]{catalog: catalog}
}

// Catalog returns the catalog the codec encodes and decodes with.
func (c *Codec[T]) Catalog() *record.Catalog[T] {
	return c.catalog
}

// DecodeAll reads the full delimited stream: a header line followed by
// one record per line. A missing header or any malformed cell fails the
// whole decode; there is no partial-load recovery.
func (c *Codec[T]) DecodeAll(r io.Reader) ([]T, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeStorage,
				fmt.Sprintf("failed to read %s header", c.catalog.Name))
		}
		return nil, errors.Newf(errors.ErrorTypeStorage,
			"%s file is empty", c.catalog.Name)
	}
	header := strings.Split(scanner.Text(), Delimiter)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []T
	line := 1
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		rec, err := c.decodeRow(header, strings.Split(text, Delimiter))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat,
				fmt.Sprintf("%s line %d", c.catalog.Name, line))
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeStorage,
			fmt.Sprintf("failed to read %s rows", c.catalog.Name))
	}

	return records, nil
}

// EncodeAll writes the header followed by one row per record, both in
// catalog order. The header is always rewritten from the catalog so the
// columns and rows can never drift apart within one file.
func (c *Codec[T]) EncodeAll(w io.Writer, records []T) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(c.catalog.Header(), Delimiter) + "\n"); err != nil {
		return errors.Wrap(err, errors.ErrorTypeStorage,
			fmt.Sprintf("failed to write %s header", c.catalog.Name))
	}
	for _, rec := range records {
		if _, err := bw.WriteString(c.encodeRow(rec) + "\n"); err != nil {
			return errors.Wrap(err, errors.ErrorTypeStorage,
				fmt.Sprintf("failed to write %s row", c.catalog.Name))
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeStorage,
			fmt.Sprintf("failed to flush %s rows", c.catalog.Name))
	}
	return nil
}

// decodeRow builds one record from a header and a data row. When the
// catalog declares a prefix-dispatched constructor, the identifier
// column selects the concrete variant before field assignment.
func (c *Codec[T]) decodeRow(header, cells []string) (T, error) {
	var zero T

	rec, err := c.newRecord(header, cells)
	if err != nil {
		return zero, err
	}

	for i, name := range header {
		if i >= len(cells) {
			return zero, errors.Newf(errors.ErrorTypeFormat,
				"row has %d cells but header declares %d columns", len(cells), len(header))
		}

		field, ok := c.catalog.Field(name)
		if !ok {
			return zero, errors.Newf(errors.ErrorTypeFieldResolution,
				"field %q is not declared by %s", name, c.catalog.Name)
		}

		raw := strings.TrimSpace(cells[i])
		if raw == "" {
			continue // absent value, field keeps its zero value
		}

		value, err := parseValue(&field, raw)
		if err != nil {
			return zero, err
		}
		if err := field.Set(rec, value); err != nil {
			return zero, errors.Wrap(err, errors.ErrorTypeFormat,
				fmt.Sprintf("failed to assign field %s", name))
		}
	}

	return rec, nil
}

// newRecord constructs the row's record, consulting the identifier cell
// when the catalog dispatches on ID prefix.
func (c *Codec[T]) newRecord(header, cells []string) (T, error) {
	var zero T
	if c.catalog.NewByID == nil {
		return c.catalog.New(), nil
	}

	for i, name := range header {
		if name != "id" {
			continue
		}
		if i >= len(cells) {
			break
		}
		rec, err := c.catalog.NewByID(strings.TrimSpace(cells[i]))
		if err != nil {
			return zero, err
		}
		return rec, nil
	}
	return zero, errors.Newf(errors.ErrorTypeFormat,
		"%s rows dispatch on the id column, but the header has none", c.catalog.Name)
}

// encodeRow renders one record as a delimited row in catalog order.
func (c *Codec[T]) encodeRow(rec T) string {
	cells := make([]string, len(c.catalog.Fields))
	for i, field := range c.catalog.Fields {
		cells[i] = formatValue(field.Kind, field.Get(rec))
	}
	return strings.Join(cells, Delimiter)
}
