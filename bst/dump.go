package bst

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump prints the tree sideways to w, right subtrees above their parent and
// left subtrees below, one node per line. The sentinel and a vacant root are
// highlighted when w is a terminal.
//
//	    ┌── end
//	┌── 8
//	5
//	└── 3
func Dump[K, V any](t *Tree[K, V], w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	keyColor := color.New(color.FgCyan)
	endColor := color.New(color.FgYellow, color.Bold)
	vacantColor := color.New(color.Faint)
	if !isTerminal(w) {
		keyColor.DisableColor()
		endColor.DisableColor()
		vacantColor.DisableColor()
	}
	label := func(n *node[K, V]) string {
		switch n.kind {
		case sentinelNode:
			return endColor.Sprint("end")
		case vacantNode:
			return vacantColor.Sprint("(vacant)")
		}
		return keyColor.Sprintf("%v", n.key)
	}
	var b strings.Builder
	var walk func(n *node[K, V], prefix, branch string)
	walk = func(n *node[K, V], prefix, branch string) {
		if n == nil {
			return
		}
		upper, lower := prefix, prefix
		switch branch {
		case "┌── ":
			upper, lower = prefix+"    ", prefix+"│   "
		case "└── ":
			upper, lower = prefix+"│   ", prefix+"    "
		}
		walk(n.right, upper, "┌── ")
		fmt.Fprintf(&b, "%s%s%s\n", prefix, branch, label(n))
		walk(n.left, lower, "└── ")
	}
	walk(t.root, "", "")
	_, err := io.WriteString(w, b.String())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
