package sortedmap

import (
	"fmt"
	"strings"
)

// node is both a tree and an entry in one: every subtree is a complete
// node, and an empty subtree is an empty node rather than a nil pointer.
// An occupied node always has two non-nil children (possibly empty), so
// the recursive operations never test for a missing child. An empty node
// has nil children and is identified by size == 0.
//
// Mutations rewrite a node's fields in place. A node can take over its
// child's or successor's entire identity during deletion; its address
// never changes, so the parent's child pointer stays valid.
type node struct {
	key    any
	value  any
	left   *node
	right  *node
	height int
	size   int
}

func (n *node) isEmpty() bool {
	return n.size == 0
}

// occupy turns an empty node into a leaf holding the given entry.
func (n *node) occupy(key, value any) {
	n.key = key
	n.value = value
	n.left = &node{}
	n.right = &node{}
	n.height = 1
	n.size = 1
}

// balance is the height difference between the left and right subtrees,
// positive when left-heavy. Occupied nodes always carry both children,
// so no presence check is needed.
func (n *node) balance() int {
	if n.isEmpty() {
		return 0
	}
	return n.left.height - n.right.height
}

// update recomputes height and size from the children, which must
// already be current themselves.
func (n *node) update() {
	if n.isEmpty() {
		return
	}
	n.height = 1 + max(n.left.height, n.right.height)
	n.size = 1 + n.left.size + n.right.size
}

// get finds the value stored under key, or reports ErrKeyNotFound.
func (n *node) get(key any) (any, error) {
	if n.isEmpty() {
		return nil, ErrKeyNotFound
	}
	cmp, err := compareKeys(key, n.key)
	if err != nil {
		return nil, err
	}
	switch {
	case cmp < 0:
		return n.left.get(key)
	case cmp > 0:
		return n.right.get(key)
	}
	return n.value, nil
}

// set inserts key with the given value, or overwrites the value if key
// is already present. Rebalances on the way back up. The only failure is
// a key that doesn't order against a resident key, in which case the
// tree is left unchanged.
func (n *node) set(key, value any) error {
	if n.isEmpty() {
		n.occupy(key, value)
		return nil
	}
	cmp, err := compareKeys(key, n.key)
	if err != nil {
		return err
	}
	switch {
	case cmp == 0:
		n.value = value
		return nil
	case cmp < 0:
		if err = n.left.set(key, value); err != nil {
			return err
		}
	default:
		if err = n.right.set(key, value); err != nil {
			return err
		}
	}
	n.update()
	n.rebalance()
	return nil
}

// delete removes key's entry, or reports ErrKeyNotFound. A node with at
// most one occupied child adopts that child's identity wholesale; a node
// with two takes its in-order successor's entry and deletes the
// successor from the right subtree instead.
func (n *node) delete(key any) error {
	if n.isEmpty() {
		return ErrKeyNotFound
	}
	cmp, err := compareKeys(key, n.key)
	if err != nil {
		return err
	}
	switch {
	case cmp < 0:
		if err = n.left.delete(key); err != nil {
			return err
		}
	case cmp > 0:
		if err = n.right.delete(key); err != nil {
			return err
		}
	default:
		if n.right.isEmpty() {
			// Covers the leaf case too: adopting an empty child
			// empties this node.
			*n = *n.left
			return nil
		}
		if n.left.isEmpty() {
			*n = *n.right
			return nil
		}
		succ := n.right.min()
		n.key = succ.key
		n.value = succ.value
		if err = n.right.delete(succ.key); err != nil {
			return err
		}
	}
	n.update()
	n.rebalance()
	return nil
}

// min returns the leftmost occupied node. The receiver must be occupied.
func (n *node) min() *node {
	for !n.left.isEmpty() {
		n = n.left
	}
	return n
}

// rebalance restores the AVL invariant at n after an insertion or
// deletion below it. Height and size must already be current. Children
// are already balanced at this point, so at most one double rotation is
// needed; callers apply rebalance bottom-up along the whole mutation
// path, which resolves every imbalance the change introduced.
func (n *node) rebalance() {
	switch bf := n.balance(); {
	case bf > 1:
		if n.left.balance() < 0 {
			n.left.rotateLeft()
		}
		n.rotateRight()
	case bf < -1:
		if n.right.balance() > 0 {
			n.right.rotateRight()
		}
		n.rotateLeft()
	}
}

// rotateRight promotes the left child into n's position. The two nodes
// trade entries rather than the parent link being repointed, so n keeps
// its address and the caller's pointer stays good. Three subtrees move;
// only the two touched nodes need their height and size recomputed,
// demoted node first.
func (n *node) rotateRight() {
	l := n.left
	n.key, l.key = l.key, n.key
	n.value, l.value = l.value, n.value
	n.left = l.left
	l.left = l.right
	l.right = n.right
	n.right = l
	l.update()
	n.update()
}

// rotateLeft is the mirror image of rotateRight.
func (n *node) rotateLeft() {
	r := n.right
	n.key, r.key = r.key, n.key
	n.value, r.value = r.value, n.value
	n.right = r.right
	r.right = r.left
	r.left = n.left
	n.left = r
	r.update()
	n.update()
}

// walk visits entries in ascending key order, stopping at the first
// callback error.
func (n *node) walk(f func(key, value any) error) error {
	if n.isEmpty() {
		return nil
	}
	if err := n.left.walk(f); err != nil {
		return err
	}
	if err := f(n.key, n.value); err != nil {
		return err
	}
	return n.right.walk(f)
}

// yield drives the iter.Seq forms of the ascending traversal. It returns
// false as soon as the consumer stops taking values.
func (n *node) yield(f func(key, value any) bool) bool {
	if n.isEmpty() {
		return true
	}
	if !n.left.yield(f) {
		return false
	}
	if !f(n.key, n.value) {
		return false
	}
	return n.right.yield(f)
}

func (n *node) string(indent string) string {
	if n.isEmpty() {
		return indent + "-\n"
	}
	var b strings.Builder
	b.WriteString(n.right.string(indent + "   "))
	fmt.Fprintf(&b, "%s%v: %v (h=%d n=%d)\n", indent, n.key, n.value, n.height, n.size)
	b.WriteString(n.left.string(indent + "   "))
	return b.String()
}

// dump prints the tree sideways, right subtree on top, with each node's
// height and size.
func (n *node) dump() {
	fmt.Printf("{\n%s}\n", n.string("   "))
}
