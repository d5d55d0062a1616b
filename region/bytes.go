package region

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Bytes returns the region's slots reinterpreted as raw bytes, Size() long.
// Writes through the returned slice are visible through the typed view and
// the other way round.
//
// Only plain-data element types are accepted: fixed-size numbers, bools and
// arrays or structs made of them. Anything holding a pointer fails with
// ErrNotPlainData.
func (r Region[T]) Bytes() ([]byte, error) {
	t := reflect.TypeFor[T]()
	if !IsPlainData(t) {
		return nil, fmt.Errorf("%w: %s", ErrNotPlainData, t)
	}
	slots, err := r.Slots()
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return []byte{}, nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(slots))), r.Size()), nil
}

// IsPlainData reports whether values of t contain no pointers and can be
// safely viewed as bytes.
func IsPlainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || IsPlainData(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !IsPlainData(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
