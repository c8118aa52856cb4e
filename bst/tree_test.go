package bst

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeTree(t *testing.T, policy Policy, keys ...int) *Tree[int, string] {
	t.Helper()
	tree, err := NewOrdered[int, string](policy)
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	for _, k := range keys {
		tree.Insert(k, "")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after setup: %v", err)
	}
	return tree
}

func keysOf[V any](tree *Tree[int, V]) []int {
	out := []int{}
	for k := range tree.Keys() {
		out = append(out, k)
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New[int, int](nil, Unique); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil comparison, got %v", err)
	}
	_, err := New[int, int](func(a, b int) int { return a - b }, Policy(7))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown policy, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	tree := makeTree(t, Unique)
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("new tree not empty: len=%d", tree.Len())
	}
	if !tree.Begin().Equal(tree.End()) {
		t.Fatalf("expected Begin == End for empty tree")
	}
	if !tree.End().Prev().IsEnd() || !tree.End().Next().IsEnd() {
		t.Fatalf("moving from End of empty tree must stay at End")
	}
	if !tree.Find(1).IsEnd() || tree.Contains(1) {
		t.Fatalf("empty tree must not find anything")
	}
	if tree.MaxSize() <= 0 {
		t.Fatalf("unexpected max size %d", tree.MaxSize())
	}
}

func TestFirstKeyLivesInRoot(t *testing.T) {
	tree := makeTree(t, Unique)
	root := tree.root
	it, ok := tree.Insert(42, "x")
	if !ok {
		t.Fatalf("insert into empty tree failed")
	}
	if it.n != root {
		t.Fatalf("expected first key to be stored into the pre-allocated root")
	}
	if tree.end.parent != root || root.right != tree.end {
		t.Fatalf("sentinel not attached to single root")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertKeepsOrderAndSentinel(t *testing.T) {
	tree := makeTree(t, Unique, 50, 30, 70, 20, 40, 60, 80, 10)
	want := []int{10, 20, 30, 40, 50, 60, 70, 80}
	if diff := cmp.Diff(want, keysOf(tree)); diff != "" {
		t.Fatalf("in-order keys mismatch (-want +got):\n%s", diff)
	}
	if tree.end.parent.key != 80 {
		t.Fatalf("sentinel must point to maximum, points to %d", tree.end.parent.key)
	}
	if got := tree.End().Prev().Key(); got != 80 {
		t.Fatalf("--End() = %d, want 80", got)
	}
	steps := 0
	for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
		steps++
	}
	if steps != tree.Len() {
		t.Fatalf("reached End after %d steps, want %d", steps, tree.Len())
	}
}

func TestUniqueInsertRejectsDuplicate(t *testing.T) {
	tree := makeTree(t, Unique, 5, 3, 8)
	first := tree.Find(3)
	it, ok := tree.Insert(3, "other")
	if ok {
		t.Fatalf("expected duplicate insert to be rejected")
	}
	if !it.Equal(first) {
		t.Fatalf("expected iterator to existing key")
	}
	if tree.Len() != 3 {
		t.Fatalf("size changed by rejected insert: %d", tree.Len())
	}
}

func TestSetScenarioEraseRoot(t *testing.T) {
	tree := makeTree(t, Unique, 5, 3, 8)
	if err := tree.Erase(tree.Find(5)); err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if diff := cmp.Diff([]int{3, 8}, keysOf(tree)); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
	if tree.Contains(5) {
		t.Fatalf("erased key still contained")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestEraseCases(t *testing.T) {
	cases := []struct {
		name  string
		erase int
	}{
		{"leaf-left", 20},
		{"leaf-max", 80},
		{"one-child-left", 30},
		{"one-child-right", 60},
		{"two-children", 50},
		{"two-children-max-sentinel", 70},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			//        50
			//    30      70
			//  20      60   80(end)
			// plus 65 below 60, so 60 has one right child; 30 has one left child
			tree := makeTree(t, Unique, 50, 30, 70, 20, 60, 80, 65)
			if c.erase == 70 {
				tree.Erase(tree.Find(80)) // 70 becomes max with left subtree
			}
			others := map[int]Iterator[int, string]{}
			for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
				if it.Key() != c.erase {
					others[it.Key()] = it
				}
			}
			if err := tree.Erase(tree.Find(c.erase)); err != nil {
				t.Fatalf("erase %d failed: %v", c.erase, err)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("invariants broken after erasing %d: %v", c.erase, err)
			}
			if tree.Contains(c.erase) {
				t.Fatalf("key %d still present", c.erase)
			}
			for k, it := range others {
				if !it.Valid() || it.Key() != k || !tree.Find(k).Equal(it) {
					t.Fatalf("iterator to %d invalidated by erasing %d", k, c.erase)
				}
			}
		})
	}
}

func TestEraseEndAndForeign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	tree := makeTree(t, Unique, 1, 2)
	if err := tree.Erase(tree.End()); !errors.Is(err, ErrEraseEnd) {
		t.Fatalf("expected ErrEraseEnd, got %v", err)
	}
	other := makeTree(t, Unique, 1)
	if err := tree.Erase(other.Find(1)); !errors.Is(err, ErrForeignIterator) {
		t.Fatalf("expected ErrForeignIterator, got %v", err)
	}
	if err := tree.Erase(Iterator[int, string]{}); !errors.Is(err, ErrForeignIterator) {
		t.Fatalf("expected ErrForeignIterator for zero iterator, got %v", err)
	}
	if tree.Len() != 2 {
		t.Fatalf("failed erase changed size to %d", tree.Len())
	}
}

func TestEraseLastKeyRestoresVacantRoot(t *testing.T) {
	tree := makeTree(t, Unique, 7)
	if err := tree.Erase(tree.Begin()); err != nil {
		t.Fatal(err)
	}
	if !tree.IsEmpty() || !tree.root.isVacant() {
		t.Fatalf("expected vacant root after erasing last key")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	tree.Insert(9, "")
	if tree.Len() != 1 || tree.Begin().Key() != 9 {
		t.Fatalf("tree not reusable after becoming empty")
	}
}

func TestIteratorWrapAround(t *testing.T) {
	tree := makeTree(t, Unique, 2, 1, 3)
	if got := tree.Begin().Prev().Key(); got != 3 {
		t.Fatalf("Prev of minimum = %d, want wrap to maximum 3", got)
	}
	if got := tree.End().Next().Key(); got != 3 {
		t.Fatalf("Next of End = %d, want maximum 3", got)
	}
	if !tree.Last().Next().IsEnd() {
		t.Fatalf("Next of maximum must be End")
	}
	var back []int
	for it := tree.Last(); ; it = it.Prev() {
		back = append(back, it.Key())
		if it.Equal(tree.Begin()) {
			break
		}
	}
	if diff := cmp.Diff([]int{3, 2, 1}, back); diff != "" {
		t.Fatalf("backward walk mismatch (-want +got):\n%s", diff)
	}
}

func TestDereferenceEndPanics(t *testing.T) {
	tree := makeTree(t, Unique, 1)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic when dereferencing End")
		}
	}()
	_ = tree.End().Key()
}

func TestMultiDuplicates(t *testing.T) {
	tree := makeTree(t, Multi, 1, 1, 2, 2, 3)
	if tree.Len() != 5 {
		t.Fatalf("expected 5 keys, have %d", tree.Len())
	}
	if diff := cmp.Diff([]int{1, 1, 2, 2, 3}, keysOf(tree)); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
	if n := tree.Count(1); n != 2 {
		t.Fatalf("Count(1) = %d, want 2", n)
	}
	if n := tree.Count(4); n != 0 {
		t.Fatalf("Count(4) = %d, want 0", n)
	}
	if got := tree.UpperBound(1).Key(); got != 2 {
		t.Fatalf("UpperBound(1) = %d, want 2", got)
	}
	lb := tree.LowerBound(2)
	if lb.Key() != 2 || lb.Prev().Key() != 1 {
		t.Fatalf("LowerBound(2) is not the first 2")
	}
	if !tree.Find(2).Equal(lb) {
		t.Fatalf("Find must return leftmost duplicate")
	}
	lo, hi := tree.EqualRange(2)
	n := 0
	for it := lo; !it.Equal(hi); it = it.Next() {
		n++
	}
	if n != 2 || hi.Key() != 3 {
		t.Fatalf("EqualRange(2) spans %d keys up to %v", n, hi.Key())
	}
	if !tree.UpperBound(3).IsEnd() || !tree.LowerBound(4).IsEnd() {
		t.Fatalf("bounds beyond maximum must be End")
	}
}

func TestMultiInsertsBeforeFirstEqual(t *testing.T) {
	tree := makeTree(t, Multi)
	first, _ := tree.Insert(5, "first")
	second, ok := tree.Insert(5, "second")
	if !ok {
		t.Fatalf("multi insert must always succeed")
	}
	if !second.Next().Equal(first) {
		t.Fatalf("duplicate not linked immediately before existing key")
	}
	if got := tree.Find(5).Value(); got != "second" {
		t.Fatalf("Find(5) = %q, want leftmost %q", got, "second")
	}
}

func TestMergeUnique(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	a := makeTree(t, Unique, 1, 3, 5)
	b := makeTree(t, Unique, 2, 3, 4)
	moved := b.Find(4)
	a.Merge(b)
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, keysOf(a)); diff != "" {
		t.Fatalf("merged keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3}, keysOf(b)); diff != "" {
		t.Fatalf("source keys mismatch (-want +got):\n%s", diff)
	}
	if !a.Find(4).Equal(moved) {
		t.Fatalf("merge must relink the node, not copy it")
	}
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
	if err := b.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestMergeIntoEmptyAndSelf(t *testing.T) {
	a := makeTree(t, Unique)
	b := makeTree(t, Unique, 2, 1, 3)
	a.Merge(b)
	if a.Len() != 3 || !b.IsEmpty() {
		t.Fatalf("unexpected sizes after merge: a=%d b=%d", a.Len(), b.Len())
	}
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
	if err := b.Check(); err != nil {
		t.Fatal(err)
	}
	a.Merge(a)
	if a.Len() != 3 {
		t.Fatalf("self merge changed size to %d", a.Len())
	}
}

func TestMergeMulti(t *testing.T) {
	a := makeTree(t, Multi, 1, 2, 2)
	b := makeTree(t, Multi, 2, 3, 1, 2)
	a.Merge(b)
	if diff := cmp.Diff([]int{1, 1, 2, 2, 2, 2, 3}, keysOf(a)); diff != "" {
		t.Fatalf("merged keys mismatch (-want +got):\n%s", diff)
	}
	if !b.IsEmpty() {
		t.Fatalf("multi merge must drain source, %d left", b.Len())
	}
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestCloneKeepsShapeAndIsIndependent(t *testing.T) {
	tree := makeTree(t, Unique, 4, 2, 6, 1, 3, 5, 7)
	c := tree.Clone()
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}
	var orig, copied bytes.Buffer
	if err := Dump(tree, &orig); err != nil {
		t.Fatal(err)
	}
	if err := Dump(c, &copied); err != nil {
		t.Fatal(err)
	}
	if orig.String() != copied.String() {
		t.Fatalf("clone has different shape:\n%s\nvs\n%s", orig.String(), copied.String())
	}
	c.Erase(c.Find(4))
	if !tree.Contains(4) || tree.Len() != 7 {
		t.Fatalf("erasing from clone changed original")
	}
	empty := makeTree(t, Unique).Clone()
	if err := empty.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestSwapAndClear(t *testing.T) {
	a := makeTree(t, Unique, 1, 2)
	b := makeTree(t, Unique, 9)
	a.Swap(b)
	if a.Len() != 1 || b.Len() != 2 || a.Begin().Key() != 9 {
		t.Fatalf("swap did not exchange contents")
	}
	b.Clear()
	if !b.IsEmpty() {
		t.Fatalf("clear left %d keys", b.Len())
	}
	if err := b.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestRandomRoundTrip(t *testing.T) {
	const n = 300
	r := rand.New(rand.NewPCG(7, 11))
	for _, policy := range []Policy{Unique, Multi} {
		tree := makeTree(t, policy)
		for _, k := range r.Perm(n) {
			tree.Insert(k, "")
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("%v: invalid after inserts: %v", policy, err)
		}
		for i, k := range r.Perm(n) {
			if err := tree.Erase(tree.Find(k)); err != nil {
				t.Fatalf("%v: erase %d failed: %v", policy, k, err)
			}
			if i%25 == 0 {
				if err := tree.Check(); err != nil {
					t.Fatalf("%v: invalid after erasing %d: %v", policy, k, err)
				}
			}
		}
		if !tree.IsEmpty() {
			t.Fatalf("%v: %d keys left after erasing all", policy, tree.Len())
		}
		for k := range n {
			if !tree.Find(k).IsEnd() {
				t.Fatalf("%v: erased key %d still found", policy, k)
			}
		}
	}
}

// checkMulti compares a multi tree against the sorted reference ref, key by
// key over the range [0, keys).
func checkMulti(t *testing.T, tree *Tree[int, string], ref []int, keys int, step string) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("%s: invalid tree: %v", step, err)
	}
	if tree.Len() != len(ref) {
		t.Fatalf("%s: size is %d, reference holds %d", step, tree.Len(), len(ref))
	}
	if diff := cmp.Diff(ref, keysOf(tree)); diff != "" {
		t.Fatalf("%s: keys differ (-want +got):\n%s", step, diff)
	}
	for k := range keys {
		want := 0
		for _, x := range ref {
			if x == k {
				want++
			}
		}
		if got := tree.Count(k); got != want {
			t.Fatalf("%s: count(%d) is %d, want %d", step, k, got, want)
		}
		if want == 0 {
			if !tree.Find(k).IsEnd() {
				t.Fatalf("%s: absent key %d found", step, k)
			}
			continue
		}
		if !tree.Find(k).Equal(tree.LowerBound(k)) {
			t.Fatalf("%s: find(%d) is not the leftmost equal key", step, k)
		}
	}
}

func TestMultiDuplicateHeavyEraseAndMerge(t *testing.T) {
	const keys = 8
	r := rand.New(rand.NewPCG(3, 5))
	for round := range 20 {
		tree := makeTree(t, Multi)
		ref := []int{}
		for range 40 + r.IntN(40) {
			k := r.IntN(keys)
			tree.Insert(k, "")
			ref = append(ref, k)
		}
		slices.Sort(ref)
		checkMulti(t, tree, ref, keys, "after inserts")
		for range len(ref) / 2 {
			i := r.IntN(len(ref))
			pos := tree.Begin()
			for range i {
				pos = pos.Next()
			}
			if err := tree.Erase(pos); err != nil {
				t.Fatalf("round %d: erase at %d failed: %v", round, i, err)
			}
			ref = slices.Delete(ref, i, i+1)
			checkMulti(t, tree, ref, keys, "after erase")
		}
		other := makeTree(t, Multi)
		for range 30 {
			k := r.IntN(keys)
			other.Insert(k, "")
			ref = append(ref, k)
		}
		n := tree.Len() + other.Len()
		tree.Merge(other)
		slices.Sort(ref)
		if !other.IsEmpty() || tree.Len() != n {
			t.Fatalf("round %d: merge left %d in source, target holds %d of %d",
				round, other.Len(), tree.Len(), n)
		}
		if err := other.Check(); err != nil {
			t.Fatalf("round %d: merged-out source invalid: %v", round, err)
		}
		checkMulti(t, tree, ref, keys, "after merge")
	}
}

func TestMaxSizeIsAddressSpaceOverNodeSize(t *testing.T) {
	tree := makeTree(t, Unique)
	want := math.MaxInt / int(unsafe.Sizeof(node[int, string]{}))
	if tree.MaxSize() != want {
		t.Fatalf("max size is %d, want %d", tree.MaxSize(), want)
	}
	tree.Insert(1, "")
	if tree.MaxSize() != want {
		t.Fatalf("max size changed with contents: %d", tree.MaxSize())
	}
	wide, _ := NewOrdered[int, [64]byte](Unique)
	if wide.MaxSize() >= want || wide.MaxSize() <= 0 {
		t.Fatalf("max size for larger nodes is %d, want below %d", wide.MaxSize(), want)
	}
}

func TestDumpAndDot(t *testing.T) {
	tree := makeTree(t, Unique, 5, 3, 8)
	var b bytes.Buffer
	if err := Dump(tree, &b); err != nil {
		t.Fatal(err)
	}
	want := "    ┌── end\n┌── 8\n5\n└── 3\n"
	if b.String() != want {
		t.Fatalf("dump mismatch:\n%s\nwant:\n%s", b.String(), want)
	}
	b.Reset()
	if err := ToDot(tree, &b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.Contains(dot, "label=\"end\"") {
		t.Fatalf("unexpected DOT output:\n%s", dot)
	}
	if !strings.Contains(dot, "style=dashed") {
		t.Fatalf("DOT output lacks sentinel back-link")
	}
}
