package list

import "fmt"

// Splice moves all elements of other before pos, leaving other empty. No
// element is copied, iterators into other now refer into l.
func (l *List[E]) Splice(pos Iterator[E], other *List[E]) error {
	if err := l.owns(pos); err != nil {
		return err
	}
	if other == l {
		return nil
	}
	other.lazyInit()
	if other.size == 0 {
		return nil
	}
	first, last, n := other.end.next, other.end.prev, other.size
	other.init()
	l.linkRange(pos.e, first, last, n)
	return nil
}

// Merge moves all elements of other into l, where both lists are sorted.
// Walking both lists, an element of l stays in front as long as it is less
// than the current element of other; otherwise the element of other is
// relinked in front of it. What is left of other goes to the end of l.
// other is empty afterwards.
//
// Elements of other are placed before equal elements of l.
func (l *List[E]) Merge(other *List[E]) error {
	if l.cmp == nil {
		return fmt.Errorf("%w: merge", ErrNoOrder)
	}
	if other == l {
		return nil
	}
	l.lazyInit()
	other.lazyInit()
	l.merge(other, func(c int) bool { return c < 0 })
	return nil
}

// merge does the work for Merge and Sort. keep decides, given the comparison
// of the current elements of l and other, whether l's element stays in front.
func (l *List[E]) merge(other *List[E], keep func(int) bool) {
	it1, it2 := l.end.next, other.end.next
	for it1 != &l.end && it2 != &other.end {
		if keep(l.cmp(it1.value, it2.value)) {
			it1 = it1.next
			continue
		}
		e := it2
		it2 = it2.next
		other.unlink(e)
		l.link(it1, e)
	}
	if other.size > 0 {
		first, last, n := other.end.next, other.end.prev, other.size
		other.init()
		l.linkRange(&l.end, first, last, n)
	}
}

// Sort orders the elements ascending. The sort is stable: equal elements
// keep their relative order. Elements are relinked, not copied.
func (l *List[E]) Sort() error {
	if l.cmp == nil {
		return fmt.Errorf("%w: sort", ErrNoOrder)
	}
	l.lazyInit()
	l.mergeSort()
	return nil
}

func (l *List[E]) mergeSort() {
	if l.size < 2 {
		return
	}
	front := l.cutFront(l.size / 2)
	front.mergeSort()
	l.mergeSort()
	front.merge(l, func(c int) bool { return c <= 0 })
	l.Swap(front)
}

// cutFront moves the first n elements into a new list.
func (l *List[E]) cutFront(n int) *List[E] {
	assertThat(n > 0 && n <= l.size, "list: cut size out of range")
	front := NewFunc(l.cmp)
	first, last := l.end.next, l.end.next
	for range n - 1 {
		last = last.next
	}
	l.end.next = last.next
	last.next.prev = &l.end
	l.size -= n
	front.linkRange(&front.end, first, last, n)
	return front
}

// Unique removes consecutive elements comparing equal to their predecessor
// and returns the number of elements removed.
func (l *List[E]) Unique() (int, error) {
	if l.cmp == nil {
		return 0, fmt.Errorf("%w: unique", ErrNoOrder)
	}
	if l.size < 2 {
		return 0, nil
	}
	removed := 0
	for e := l.end.next; e.next != &l.end; {
		if l.cmp(e.value, e.next.value) == 0 {
			l.remove(e.next)
			removed++
			continue
		}
		e = e.next
	}
	if removed > 0 {
		T().Debugf("list: unique removed %d elements", removed)
	}
	return removed, nil
}

// Reverse reverses the order of the elements.
func (l *List[E]) Reverse() {
	l.lazyInit()
	e := &l.end
	for {
		e.next, e.prev = e.prev, e.next
		e = e.prev // former next
		if e == &l.end {
			break
		}
	}
}
