package sortedmap

import (
	"bytes"
	"cmp"
	"fmt"
)

// A Key is a user-provided key type that knows its own sort order.
// Implementing it makes a type usable as a map key alongside the
// built-in comparable kinds.
type Key interface {
	// Order returns -1 if the receiver is less than the argument, 1 if
	// greater, and 0 if equal.
	Order(Key) int
}

// compareKeys is the total order over the key kinds the map understands
// natively: nil, strings, byte slices, the built-in integer and float
// types, and implementations of Key. Keys of differing dynamic types do
// not order against each other; such pairs report ErrTypeMismatch.
func compareKeys(a, b any) (int, error) {
	switch v := a.(type) {
	case nil:
		if b == nil {
			return 0, nil
		}
	case Key:
		if v2, ok := b.(Key); ok {
			return v.Order(v2), nil
		}
	case string:
		if v2, ok := b.(string); ok {
			return cmp.Compare(v, v2), nil
		}
	case []byte:
		if v2, ok := b.([]byte); ok {
			return bytes.Compare(v, v2), nil
		}
	case int:
		if v2, ok := b.(int); ok {
			return cmp.Compare(v, v2), nil
		}
	case int8:
		if v2, ok := b.(int8); ok {
			return cmp.Compare(v, v2), nil
		}
	case int16:
		if v2, ok := b.(int16); ok {
			return cmp.Compare(v, v2), nil
		}
	case int32:
		if v2, ok := b.(int32); ok {
			return cmp.Compare(v, v2), nil
		}
	case int64:
		if v2, ok := b.(int64); ok {
			return cmp.Compare(v, v2), nil
		}
	case uint:
		if v2, ok := b.(uint); ok {
			return cmp.Compare(v, v2), nil
		}
	case uint8:
		if v2, ok := b.(uint8); ok {
			return cmp.Compare(v, v2), nil
		}
	case uint16:
		if v2, ok := b.(uint16); ok {
			return cmp.Compare(v, v2), nil
		}
	case uint32:
		if v2, ok := b.(uint32); ok {
			return cmp.Compare(v, v2), nil
		}
	case uint64:
		if v2, ok := b.(uint64); ok {
			return cmp.Compare(v, v2), nil
		}
	case float32:
		if v2, ok := b.(float32); ok {
			return cmp.Compare(v, v2), nil
		}
	case float64:
		if v2, ok := b.(float64); ok {
			return cmp.Compare(v, v2), nil
		}
	}
	return 0, fmt.Errorf("%w: don't know how to compare %T with %T; implement the Key interface", ErrTypeMismatch, a, b)
}
