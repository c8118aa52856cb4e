package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	q := New(1, 2)
	q.Push(3)
	q.EmplaceBack(4, 5)
	require.Equal(t, 5, q.Len())
	back, err := q.Back()
	require.NoError(t, err)
	assert.Equal(t, 5, back)
	for want := 1; want <= 5; want++ {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
	_, err = q.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = q.Front()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = q.Back()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestZeroQueueSwapClone(t *testing.T) {
	var a Queue[string]
	a.Push("x")
	b := New("y", "z")
	a.Swap(b)
	front, _ := a.Front()
	assert.Equal(t, "y", front)
	assert.Equal(t, 1, b.Len())
	c := a.Clone()
	c.Push("w")
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, c.Len())
}
