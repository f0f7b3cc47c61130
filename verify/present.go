package verify

import "reflect"

// Lengther is implemented by sequence-like containers (bytes.Buffer, list.List, ...).
type Lengther interface {
	Len() int
}

// Sizer is implemented by mapping-like containers such as maps.Map.
type Sizer interface {
	Size() int
}

// IsNil returns true if the value is a literal nil or a typed nil
// (pointer, map, slice, chan, func or interface).
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	switch v := value.(type) {
	case bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return false
	case []byte:
		return v == nil
	case []string:
		return v == nil
	case []any:
		return v == nil
	case map[string]any:
		return v == nil
	case map[string]string:
		return v == nil
	}

	valOf := reflect.ValueOf(value)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// IsPresent runs the presence cascade (without a predicate) and reports
// whether the value passes it.
func IsPresent(value any) bool {
	if IsNil(value) {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case []byte:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case map[string]string:
		return len(v) > 0
	case Lengther:
		return v.Len() > 0
	case Sizer:
		return v.Size() > 0
	}

	// Named types (type Flag bool, type IDs []int, ...) and element types the
	// switch above doesn't list.
	valOf := reflect.ValueOf(value)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return valOf.Bool()
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return valOf.Len() > 0
	default:
		return true
	}
}
