package ledgerapi

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// UndefinedValueError is returned when a payload contains an unset value at
// any depth. Path is the exact location within the scanned structure, e.g.
// "creates[2].value.stock_class_ids".
type UndefinedValueError struct {
	Path string
}

func (e *UndefinedValueError) Error() string {
	return fmt.Sprintf("undefined value at %s", e.Path)
}

// UnsupportedValueError is returned when a payload contains a Go value the
// wire format cannot carry (NaN, functions, arbitrary structs, ...).
type UnsupportedValueError struct {
	Path  string
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value of type %T at %s", e.Value, e.Path)
}

// ValidateValue recursively scans a wire value and fails on the first
// undefined or non-serializable value it finds. A payload containing only
// explicit nulls, primitives, and well-formed nested structures passes.
//
// Map keys are visited in sorted order so a payload with several defects
// always reports the same one.
func ValidateValue(value any, path string) error {
	switch v := value.(type) {
	case nil:
		return nil
	case undefinedValue:
		return &UndefinedValueError{Path: path}
	case string, bool, int, int32, int64, decimal.Decimal:
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &UnsupportedValueError{Path: path, Value: v}
		}

		return nil
	case Variant:
		return ValidateValue(v.Value, path+".value")
	case *Variant:
		if v == nil {
			return nil
		}

		return ValidateValue(v.Value, path+".value")
	case Record:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if err := ValidateValue(v[k], path+"."+k); err != nil {
				return err
			}
		}

		return nil
	case []any:
		for i, item := range v {
			if err := ValidateValue(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}

		return nil
	default:
		return &UnsupportedValueError{Path: path, Value: value}
	}
}
