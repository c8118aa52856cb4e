package bst

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Missing left children are drawn as small empty circles, so that left and
// right edges stay distinguishable.
func ToDot[K, V any](t *Tree[K, V], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		ID := ids.alloc(n)
		nodelist.WriteString(fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, dotLabel(n), nodeDotStyles(n)))
		if n.left == nil && n.right == nil {
			return
		}
		if n.left == nil {
			nilid := ID + 10000
			nodelist.WriteString(fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode()))
			edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid))
		} else {
			edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.left)))
			walk(n.left)
		}
		if n.right != nil {
			edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.right)))
			walk(n.right)
		}
	}
	walk(t.root)
	// back-link of the sentinel to the maximum
	edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed];\n",
		ids.find(t.end), ids.alloc(t.end.parent)))
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func dotLabel[K, V any](n *node[K, V]) string {
	switch n.kind {
	case sentinelNode:
		return "end"
	case vacantNode:
		return "vacant"
	}
	return strings.ReplaceAll(fmt.Sprintf("%v", n.key), "\"", "\\\"")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K, V any](n *node[K, V]) string {
	s := ",style=filled"
	switch n.kind {
	case sentinelNode:
		s += ",shape=box,fillcolor=\"#FFBB88\""
	case vacantNode:
		s += ",shape=box,fillcolor=white"
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
