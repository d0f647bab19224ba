// Package dsu implements a disjoint-set (union-find) structure with path
// compression and union-by-rank, specialized for the enumerator's hot path:
// cloning a snapshot once per candidate edge extension (spec §4.A, §4.G).
//
// The universe of elements is fixed at construction time (every
// vakya.NodeID the VakyaGraph can ever mention is known upfront), so the
// element→index mapping is built once and shared read-only across every
// Copy(). Only the mutable parent/rank arrays are duplicated, making Copy
// a single pair of slice copies rather than a full structural rebuild —
// the arena-backed approach spec §9 recommends in place of a persistent
// (path-copied) tree, which would add log-factor overhead to the far more
// frequent Find/Union calls for a data set whose universe size never
// exceeds a few dozen VakyaGraph nodes.
package dsu
