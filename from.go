package sortedmap

import (
	"fmt"
	"iter"
	"reflect"
)

// NewFromSource builds a map from the entries of source, inserting them
// one at a time in the source's iteration order; a duplicate key
// overwrites the earlier entry. Supported sources are another *Map, an
// []Entry, a [][2]any, an iter.Seq2[any, any], and any Go map (whose
// iteration order doesn't matter, keys being unique). Anything else
// reports ErrTypeMismatch and no map is returned.
func NewFromSource(source any) (*Map, error) {
	m := New()
	if err := m.Update(source); err != nil {
		return nil, err
	}
	return m, nil
}

// Update merges the entries of source into the map, accepting the same
// sources as NewFromSource. Entries inserted before a failure remain;
// every insertion restores the map's invariants independently, so a
// partially applied Update still leaves a valid map.
func (m *Map) Update(source any) error {
	switch src := source.(type) {
	case *Map:
		if src == nil {
			return nil
		}
		return src.Iter(m.Set)
	case []Entry:
		for _, e := range src {
			if err := m.Set(e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	case [][2]any:
		for _, kv := range src {
			if err := m.Set(kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	case iter.Seq2[any, any]:
		for key, value := range src {
			if err := m.Set(key, value); err != nil {
				return err
			}
		}
		return nil
	}
	v := reflect.ValueOf(source)
	if !v.IsValid() || v.Kind() != reflect.Map {
		return fmt.Errorf("%w: cannot build from %T; want a map, *Map, []Entry, [][2]any or iter.Seq2[any, any]", ErrTypeMismatch, source)
	}
	it := v.MapRange()
	for it.Next() {
		if err := m.Set(it.Key().Interface(), it.Value().Interface()); err != nil {
			return err
		}
	}
	return nil
}
