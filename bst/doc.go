/*
Package bst provides the ordered tree engine behind the associative containers
of this module (sets, multisets and maps).

The engine is a plain, unbalanced binary search tree with parent links. Depth is
not bounded; inserting keys in sorted order degenerates the tree to a list, and
this is accepted.

Every tree owns one sentinel node which acts as the one-past-the-end position.
The sentinel is always the rightmost node of the tree: the node holding the
maximum key has the sentinel as its right child, and the sentinel's parent link
points back to that maximum. Every mutating operation maintains this.

An empty tree still owns a root node, a vacant placeholder. The first key
inserted is stored into this placeholder; only later keys allocate nodes.

Iterators are small values wrapping a node pointer. They do not own anything and
stay valid as long as the node they point to stays in a tree. Erase and Merge
relink nodes instead of copying payloads, so iterators to nodes other than the
erased one remain valid.

Trees come with a duplicate policy: Unique trees reject equal keys, Multi trees
link an equal key immediately before the first equal key found.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
