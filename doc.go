/*
Package sortedmap provides a mutable ordered map: entries stay sorted
by key, and lookup, insertion and deletion all take logarithmic time.
Iteration is always in ascending key order, so a sortedmap.Map works
where the Go builtin map's random iteration order won't.

# Uses

- Ordered alternative to the Go builtin map

- Stable, deterministic iteration and content fingerprints

- Predictable logarithmic worst case, no rehashing pauses

# How it balances

The map is an AVL tree: every node's subtree heights differ by at most
one, which keeps the tree's height, and so every operation's cost,
logarithmic in the entry count. Each insertion or deletion walks back
up its search path restoring that bound with at most a double rotation
per node, per "An algorithm for the organization of information" by
Adelson-Velsky and Landis, 1962, the original self-balancing search
tree.

# Keys

Keys of the built-in ordered kinds (strings, byte slices, integers,
floats) work out of the box. Anything else can be used by implementing
the Key interface. Keys of differing types don't order against each
other: operations on them report ErrTypeMismatch, checked with
errors.Is. nil is a legal key, ordering only against itself.

# Concurrency

A Map is fine to read from multiple goroutines, but mutation needs
external serialization, a single mutex around the whole map: rotations
touch several nodes, and a concurrent reader could observe the tree
mid-surgery.
*/
package sortedmap
