package vector

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroVector(t *testing.T) {
	var v Vector[int]
	require.True(t, v.IsEmpty())
	require.Equal(t, 0, v.Cap())
	v.PushBack(1)
	require.Equal(t, 1, v.Len())
	require.Equal(t, 5, v.Cap())
}

func TestPushBackGrowsByFive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	v := New[int]()
	caps := []int{}
	for i := range 11 {
		v.PushBack(i)
		caps = append(caps, v.Cap())
	}
	assert.Equal(t, []int{5, 5, 5, 5, 5, 10, 10, 10, 10, 10, 15}, caps)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, v.Data())
	//
	v = From(1, 2, 3)
	require.Equal(t, 3, v.Cap())
	v.PushBack(4)
	assert.Equal(t, 8, v.Cap())
}

func TestWithSize(t *testing.T) {
	v, err := WithSize[string](3)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", ""}, v.Data())
	_, err = WithSize[string](-1)
	assert.ErrorIs(t, err, ErrLengthExceeded)
	_, err = WithSize[string](MaxSize() + 1)
	assert.ErrorIs(t, err, ErrLengthExceeded)
	assert.Equal(t, MaxSize(), v.MaxSize())
}

func TestElementAccess(t *testing.T) {
	v := From(10, 20, 30)
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, x)
	_, err = v.At(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	//
	require.NoError(t, v.Set(0, 11))
	assert.ErrorIs(t, v.Set(3, 0), ErrOutOfRange)
	assert.Equal(t, 11, v.Index(0))
	p, err := v.Ref(2)
	require.NoError(t, err)
	*p = 33
	//
	front, err := v.Front()
	require.NoError(t, err)
	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, 11, front)
	assert.Equal(t, 33, back)
	//
	empty := New[int]()
	_, err = empty.Front()
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = empty.Back()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	v := From(1, 2, 3) // full buffer
	pos, err := v.Insert(1, 9)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []int{1, 9, 2, 3}, v.Data())
	assert.Equal(t, 7, v.Cap())
	//
	pos, err = v.Insert(v.Len(), 4) // room left, insert at end
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
	assert.Equal(t, []int{1, 9, 2, 3, 4}, v.Data())
	assert.Equal(t, 7, v.Cap())
	//
	_, err = v.Insert(6, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	//
	w := From(1, 2)
	pos, err = w.Insert(2, 3) // full buffer, insert at end
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, []int{1, 2, 3}, w.Data())
	assert.Equal(t, 5, w.Cap())
	//
	e := New[int]()
	pos, err = e.Insert(0, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
	assert.Equal(t, []int{7}, e.Data())
}

func TestEraseAndPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	s1, s2 := "a", "b"
	v := From(&s1, &s2, &s1)
	require.NoError(t, v.Erase(1))
	assert.Equal(t, []*string{&s1, &s1}, v.Data())
	assert.Nil(t, v.buf[2], "vacated slot must be reset")
	assert.ErrorIs(t, v.Erase(v.Len()), ErrEraseEnd)
	assert.ErrorIs(t, v.Erase(5), ErrOutOfRange)
	//
	v.PopBack()
	assert.Equal(t, 1, v.Len())
	assert.Nil(t, v.buf[1])
	v.PopBack()
	v.PopBack() // no-op on empty
	assert.True(t, v.IsEmpty())
	assert.ErrorIs(t, v.Erase(0), ErrEraseEnd)
}

func TestEmplace(t *testing.T) {
	v := From(1, 5)
	pos, err := v.Emplace(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Data())
	pos, err = v.Emplace(2)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	_, err = v.Emplace(9, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	v.EmplaceBack(6, 7)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, v.Data())
}

func TestCapacityManagement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	v := From(1, 2, 3)
	require.NoError(t, v.Reserve(20))
	assert.Equal(t, 20, v.Cap())
	require.NoError(t, v.Reserve(4))
	assert.Equal(t, 20, v.Cap(), "reserve never shrinks")
	assert.ErrorIs(t, v.Reserve(MaxSize()+1), ErrLengthExceeded)
	v.ShrinkToFit()
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Data())
	//
	v.Clear()
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{0, 0, 0}, v.buf)
}

func TestCopyAndMove(t *testing.T) {
	v := From(1, 2, 3)
	require.NoError(t, v.Reserve(6))
	c := v.Clone()
	assert.Equal(t, v.Data(), c.Data())
	assert.Equal(t, 6, c.Cap())
	c.PushBack(4)
	assert.Equal(t, 3, v.Len())
	//
	w := From(9)
	w.Assign(v)
	assert.Equal(t, []int{1, 2, 3}, w.Data())
	w.Assign(w)
	assert.Equal(t, []int{1, 2, 3}, w.Data())
	//
	m := New[int]()
	m.MoveFrom(c)
	assert.Equal(t, []int{1, 2, 3, 4}, m.Data())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Cap())
	//
	m.Swap(w)
	assert.Equal(t, []int{1, 2, 3}, m.Data())
	assert.Equal(t, []int{1, 2, 3, 4}, w.Data())
}

func TestAssignFuncKeepsTargetOnFailure(t *testing.T) {
	errBoom := errors.New("boom")
	src := From(1, 2, 3)
	dst := From(7, 8)
	require.NoError(t, dst.Reserve(4))
	err := dst.AssignFunc(src, func(x int) (int, error) {
		if x == 3 {
			return 0, errBoom
		}
		return x * 10, nil
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{7, 8}, dst.Data())
	assert.Equal(t, 4, dst.Cap())
	//
	err = dst.AssignFunc(src, func(x int) (int, error) { return x * 10, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, dst.Data())
}

func TestAll(t *testing.T) {
	v := From("a", "b", "c")
	var got []string
	for i, s := range v.All() {
		if i == 2 {
			break
		}
		got = append(got, s)
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
