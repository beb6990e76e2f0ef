package sortedmap

import "reflect"

// cursor walks a tree's entries in ascending order from an explicit
// stack, so two trees can be compared in lockstep without either walk
// driving the other.
type cursor struct {
	stack []*node
}

func newCursor(n *node) cursor {
	var c cursor
	c.descend(n)
	return c
}

// descend stacks the path to the leftmost occupied node under n.
func (c *cursor) descend(n *node) {
	for !n.isEmpty() {
		c.stack = append(c.stack, n)
		n = n.left
	}
}

// next pops the next entry in ascending order, or nil when the walk is
// done.
func (c *cursor) next() *node {
	if len(c.stack) == 0 {
		return nil
	}
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.descend(n.right)
	return n
}

// Equal reports whether both maps hold the same content: equal keys in
// the same ascending order, with deeply equal values. Tree shapes may
// differ; only entries count. A nil map is treated as empty. Keys of
// mismatched types make the maps unequal rather than failing.
func (m *Map) Equal(other *Map) bool {
	if m == nil {
		m = New()
	}
	if other == nil {
		other = New()
	}
	if m.Len() != other.Len() {
		return false
	}
	a := newCursor(m.rootNode())
	b := newCursor(other.rootNode())
	for {
		na := a.next()
		nb := b.next()
		if na == nil || nb == nil {
			return na == nb
		}
		cmp, err := compareKeys(na.key, nb.key)
		if err != nil || cmp != 0 {
			return false
		}
		if !reflect.DeepEqual(na.value, nb.value) {
			return false
		}
	}
}
