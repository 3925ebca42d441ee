// Package node implements the traversal engine: the proxy tree that wraps
// raw structural data and makes it navigable by normalized attribute name
// and integer index.
//
// # Overview
//
// Every wrapped value is one of a closed set of three variants:
//
//   - Mapping: a key-value structure (map[string]any and friends)
//   - Sequence: an ordered list ([]any and friends)
//   - Terminal: a scalar (string, int64, float64, bool) or the absent value
//
// All three satisfy the Node interface. Traversal never fails: a missing
// key, an out-of-range index, or any access through a Terminal degrades to
// a fresh Terminal wrapping the absent value, one level deeper. Failures
// that indicate a real problem (indexing a mapping, attribute access on a
// sequence, impossible coercions, unknown selectors) are additionally
// recorded on the tree's diagnostics sink; they are never raised.
//
// # Construction
//
// Nodes are built with Wrap, which dispatches on the shape of the raw
// value. A Mapping eagerly computes its normalized-key table in one pass,
// but children of both Mapping and Sequence nodes are constructed lazily
// on first access and memoized: two accesses of the same key return the
// identical child instance.
//
// # Depth
//
// The top-level node has depth 0. Every descent, successful or degraded,
// produces a node at depth+1.
//
// # Resolution
//
// A node resolves into an output representation via Resolve. The zero
// selector ("" or "value") produces the cleaned value: the raw value with
// every key recursively normalized. Other selectors produce the element
// form, the type tag, the depth, the key table, or text in one of the
// supported formats. See Resolve for the full set.
//
// # Thread Safety
//
// Trees are built for single-owner access. The memoizing caches are plain
// maps; concurrent writers are not supported.
package node
