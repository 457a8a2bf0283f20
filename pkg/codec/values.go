package codec

import (
	"strconv"
	"strings"
	"time"

	"github.com/carewise/hms/pkg/errors"
	"github.com/carewise/hms/pkg/record"
)

// parseValue converts a non-empty trimmed cell to the Go value matching
// the field's kind. Conversion failures carry the offending value and
// the target field and kind.
func parseValue[T record.Record](field *record.Field[T], raw string) (any, error) {
	switch field.Kind {
	case record.KindString:
		return raw, nil

	case record.KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, conversionError(field, raw, err)
		}
		return n, nil

	case record.KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, conversionError(field, raw, err)
		}
		return f, nil

	case record.KindBool:
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, conversionError(field, raw, nil)
		}

	case record.KindEnum:
		name, err := field.CanonicalEnum(raw)
		if err != nil {
			return nil, err
		}
		return name, nil

	case record.KindDate:
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, conversionError(field, raw, err)
		}
		return t, nil

	case record.KindDateTime:
		t, err := time.Parse(DateTimeLayout, raw)
		if err != nil {
			return nil, conversionError(field, raw, err)
		}
		return t, nil

	default:
		return nil, errors.Newf(errors.ErrorTypeFormat,
			"field %s has unsupported kind %s", field.Name, field.Kind)
	}
}

// formatValue renders a field value as its cell text, inverse to
// parseValue. Zero times render as an empty cell.
func formatValue(kind record.Kind, v any) string {
	switch kind {
	case record.KindString, record.KindEnum:
		s, _ := v.(string)
		return s

	case record.KindInt:
		n, _ := v.(int)
		return strconv.Itoa(n)

	case record.KindFloat:
		f, _ := v.(float64)
		return strconv.FormatFloat(f, 'f', 2, 64)

	case record.KindBool:
		b, _ := v.(bool)
		return strconv.FormatBool(b)

	case record.KindDate:
		t, _ := v.(time.Time)
		if t.IsZero() {
			return ""
		}
		return t.Format(DateLayout)

	case record.KindDateTime:
		t, _ := v.(time.Time)
		if t.IsZero() {
			return ""
		}
		return t.Format(DateTimeLayout)

	default:
		return ""
	}
}

func conversionError[T record.Record](field *record.Field[T], raw string, cause error) error {
	err := errors.Newf(errors.ErrorTypeFormat,
		"invalid value %q for field %s of type %s", raw, field.Name, field.Kind)
	err.Cause = cause
	return err.WithDetail("value", raw).WithDetail("field", field.Name)
}
