package sortedmap

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrKeyNotFound is reported by Get, Delete and Pop when the given
	// key has no entry.
	ErrKeyNotFound = errors.New("key not found")
	// ErrTypeMismatch is reported when a key doesn't order against the
	// keys already in the map, or when a construction source is neither
	// mapping-like nor a sequence of pairs.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrIterDone stops Iter early. Iter returns nil when the callback
	// reports it.
	ErrIterDone = errors.New("iteration done")
)

// Entry is a key and value pair, in the order a traversal yields them.
type Entry struct {
	Key   any
	Value any
}

// Map is an ordered mapping from keys to values. Keys are kept in
// ascending order and lookup, insertion and deletion all take
// logarithmic time. The zero value is an empty map ready to use.
//
// A Map is not safe for concurrent mutation; guard it externally if
// multiple goroutines write.
type Map struct {
	root  *node
	debug bool
}

// New returns an empty map.
func New() *Map {
	return &Map{root: &node{}}
}

// rootNode returns the root, installing an empty one on first use so the
// zero Map value works.
func (m *Map) rootNode() *node {
	if m.root == nil {
		m.root = &node{}
	}
	return m.root
}

// Get returns the value stored under key. Absent keys report
// ErrKeyNotFound; a key that doesn't order against resident keys reports
// ErrTypeMismatch.
func (m *Map) Get(key any) (any, error) {
	return m.rootNode().get(key)
}

// Set adds or replaces the value for the given key. The only failure is
// ErrTypeMismatch for a key that doesn't order against resident keys;
// the map is unchanged when that happens.
func (m *Map) Set(key, value any) error {
	if m.debug {
		fmt.Printf("inserting %v...\n", key)
	}
	return m.rootNode().set(key, value)
}

// Delete removes the entry with the given key, reporting ErrKeyNotFound
// if there is none.
func (m *Map) Delete(key any) error {
	if m.debug {
		fmt.Printf("deleting %v...\n", key)
	}
	return m.rootNode().delete(key)
}

// Pop removes the entry with the given key and returns its value,
// reporting ErrKeyNotFound if there is none.
func (m *Map) Pop(key any) (any, error) {
	root := m.rootNode()
	value, err := root.get(key)
	if err != nil {
		return nil, err
	}
	if err := root.delete(key); err != nil {
		return nil, err
	}
	return value, nil
}

// Contains reports whether key has an entry. It never fails; a key that
// doesn't order against resident keys is simply not present.
func (m *Map) Contains(key any) bool {
	_, err := m.rootNode().get(key)
	return err == nil
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.rootNode().size
}

// Height returns the number of nodes on the longest path from the root
// to a leaf: 0 for an empty map, 1 for a single entry. It grows
// logarithmically with Len.
func (m *Map) Height() int {
	return m.rootNode().height
}

// Clear removes every entry.
func (m *Map) Clear() {
	*m.rootNode() = node{}
}

// Iter invokes the given callback for every entry in ascending key
// order, stopping at the first error, which it returns. A callback can
// end the iteration without an error by returning ErrIterDone.
func (m *Map) Iter(f func(key, value any) error) error {
	err := m.rootNode().walk(f)
	if errors.Is(err, ErrIterDone) {
		return nil
	}
	return err
}

// Keys returns the keys in ascending order. The sequence is lazy and
// walks the map's current state each time it is ranged over; don't
// mutate the map mid-range.
func (m *Map) Keys() iter.Seq[any] {
	return func(yield func(any) bool) {
		m.rootNode().yield(func(key, _ any) bool {
			return yield(key)
		})
	}
}

// Values returns the values, ordered by ascending key.
func (m *Map) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		m.rootNode().yield(func(_, value any) bool {
			return yield(value)
		})
	}
}

// All returns the entries in ascending key order, for use with
// range-over-func. Like Keys, each range walks current state.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		m.rootNode().yield(yield)
	}
}

// String renders the entries in ascending key order, in the style of a
// map literal.
func (m *Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	m.rootNode().yield(func(key, value any) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", key, value)
		return true
	})
	b.WriteByte('}')
	return b.String()
}

// dump prints the tree shape for debugging.
func (m *Map) dump() {
	m.rootNode().dump()
}
