package linkedlist

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter returns err after n successful writes.
type failingWriter struct {
	n   int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func TestZeroValueIsEmpty(t *testing.T) {
	var l List[int]
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Size())
	assert.Equal(t, []int{}, l.Values())
	assert.Equal(t, "[]", l.String())
}

func TestAppendPeekReverse(t *testing.T) {
	l := &List[int]{}
	l.Append(1)
	l.Append(2)
	l.Append(3)

	assert.Equal(t, 3, l.Size())
	first, err := l.PeekFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	last, err := l.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, 3, last)

	require.NoError(t, l.Reverse())
	first, err = l.PeekFirst()
	require.NoError(t, err)
	assert.Equal(t, 3, first)
	last, err = l.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, 1, last)
}

func TestSizeCountsAppends(t *testing.T) {
	l := New[string]()
	for i := range 50 {
		assert.Equal(t, i, l.Size())
		l.Append(fmt.Sprintf("v%d", i))
	}
	assert.Equal(t, 50, l.Size())
}

func TestPushThenPeekFirst(t *testing.T) {
	l := New(1, 2)
	l.Push(7)
	got, err := l.PeekFirst()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, []int{7, 1, 2}, l.Values())
}

func TestInsertAtIndex(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		index   int
		value   int
		want    []int
		wantErr error
	}{
		{name: "head of empty list", initial: nil, index: 0, value: 9, want: []int{9}},
		{name: "head of non-empty list", initial: []int{1, 2}, index: 0, value: 9, want: []int{9, 1, 2}},
		{name: "middle", initial: []int{1, 2, 3}, index: 2, value: 9, want: []int{1, 2, 9, 3}},
		{name: "index equal to size appends", initial: []int{1, 2, 3}, index: 3, value: 9, want: []int{1, 2, 3, 9}},
		{name: "negative index", initial: []int{1}, index: -1, value: 9, want: []int{1}, wantErr: ErrInvalidIndex},
		{name: "past the end", initial: []int{1, 2}, index: 3, value: 9, want: []int{1, 2}, wantErr: ErrInvalidIndex},
		{name: "past the end of empty list", initial: nil, index: 1, value: 9, want: []int{}, wantErr: ErrInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.initial...)
			err := l.InsertAtIndex(tt.index, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, l.Values())
		})
	}
}

func TestInsertAtIndexZeroMatchesPush(t *testing.T) {
	a := New(4, 5, 6)
	b := New(4, 5, 6)
	require.NoError(t, a.InsertAtIndex(0, 3))
	b.Push(3)
	assert.Equal(t, b.Values(), a.Values())
}

func TestInsertAfter(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		target  int
		want    []int
		wantErr error
	}{
		{name: "after middle", initial: []int{1, 2, 3}, target: 2, want: []int{1, 2, 99, 3}},
		{name: "after tail", initial: []int{1, 2, 3}, target: 3, want: []int{1, 2, 3, 99}},
		{name: "first match only", initial: []int{2, 2}, target: 2, want: []int{2, 99, 2}},
		{name: "empty list", initial: nil, target: 2, want: []int{}, wantErr: ErrEmptyList},
		{name: "target absent", initial: []int{1, 3}, target: 2, want: []int{1, 3}, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.initial...)
			err := l.InsertAfter(tt.target, 99)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, l.Values())
		})
	}
}

func TestInsertBefore(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		target  int
		want    []int
		wantErr error
	}{
		{name: "before head", initial: []int{1, 2, 3}, target: 1, want: []int{99, 1, 2, 3}},
		{name: "before tail", initial: []int{1, 2, 3}, target: 3, want: []int{1, 2, 99, 3}},
		{name: "first match only", initial: []int{1, 2, 2}, target: 2, want: []int{1, 99, 2, 2}},
		{name: "empty list", initial: nil, target: 1, want: []int{}, wantErr: ErrEmptyList},
		{name: "target absent", initial: []int{1, 3}, target: 2, want: []int{1, 3}, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.initial...)
			err := l.InsertBefore(tt.target, 99)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, l.Values())
		})
	}
}

func TestDeleteFirstAndLast(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := New[int]()
		_, err := l.DeleteFirst()
		assert.ErrorIs(t, err, ErrEmptyList)
		_, err = l.DeleteLast()
		assert.ErrorIs(t, err, ErrEmptyList)
	})

	t.Run("single node becomes empty", func(t *testing.T) {
		l := New(5)
		v, err := l.DeleteLast()
		require.NoError(t, err)
		assert.Equal(t, 5, v)
		assert.True(t, l.IsEmpty())

		l.Push(6)
		v, err = l.DeleteFirst()
		require.NoError(t, err)
		assert.Equal(t, 6, v)
		assert.True(t, l.IsEmpty())
	})

	t.Run("removes ends", func(t *testing.T) {
		l := New(1, 2, 3, 4)
		v, err := l.DeleteFirst()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		v, err = l.DeleteLast()
		require.NoError(t, err)
		assert.Equal(t, 4, v)
		assert.Equal(t, []int{2, 3}, l.Values())
	})
}

func TestDeleteNode(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		target  string
		want    []string
		wantErr error
	}{
		{name: "head", initial: []string{"a", "b", "c"}, target: "a", want: []string{"b", "c"}},
		{name: "middle", initial: []string{"a", "b", "c"}, target: "b", want: []string{"a", "c"}},
		{name: "tail", initial: []string{"a", "b", "c"}, target: "c", want: []string{"a", "b"}},
		{name: "first match only", initial: []string{"a", "b", "b"}, target: "b", want: []string{"a", "b"}},
		{name: "only node", initial: []string{"a"}, target: "a", want: []string{}},
		{name: "empty list", initial: nil, target: "a", want: []string{}, wantErr: ErrEmptyList},
		{name: "absent", initial: []string{"a"}, target: "z", want: []string{"a"}, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.initial...)
			err := l.DeleteNode(tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, l.Values())
		})
	}
}

func TestDeleteAtIndex(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		index   int
		removed int
		want    []int
		wantErr error
	}{
		{name: "head", initial: []int{1, 2, 3}, index: 0, removed: 1, want: []int{2, 3}},
		{name: "middle", initial: []int{1, 2, 3}, index: 1, removed: 2, want: []int{1, 3}},
		{name: "tail", initial: []int{1, 2, 3}, index: 2, removed: 3, want: []int{1, 2}},
		{name: "negative checked before empty", initial: nil, index: -1, want: []int{}, wantErr: ErrInvalidIndex},
		{name: "empty list", initial: nil, index: 0, want: []int{}, wantErr: ErrEmptyList},
		{name: "index equal to size", initial: []int{1, 2}, index: 2, want: []int{1, 2}, wantErr: ErrInvalidIndex},
		{name: "far past the end", initial: []int{1, 2}, index: 10, want: []int{1, 2}, wantErr: ErrInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.initial...)
			got, err := l.DeleteAtIndex(tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.removed, got)
			}
			assert.Equal(t, tt.want, l.Values())
		})
	}
}

func TestDeleteAtIndexThenPeekReturnsNext(t *testing.T) {
	l := New(10, 20, 30)

	_, err := l.DeleteAtIndex(1)
	require.NoError(t, err)
	got, err := l.PeekAtIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 30, got)

	_, err = l.DeleteAtIndex(1)
	require.NoError(t, err)
	_, err = l.PeekAtIndex(1)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = l.DeleteAtIndex(0)
	require.NoError(t, err)
	_, err = l.PeekAtIndex(0)
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestPeekAtIndex(t *testing.T) {
	l := New("x", "y", "z")
	for i, want := range []string{"x", "y", "z"} {
		got, err := l.PeekAtIndex(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := l.PeekAtIndex(3)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Contains(t, err.Error(), "size 3")

	_, err = l.PeekAtIndex(-2)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Contains(t, err.Error(), "negative")

	_, err = New[string]().PeekAtIndex(0)
	assert.ErrorIs(t, err, ErrEmptyList)
	_, err = New[string]().PeekLast()
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestContains(t *testing.T) {
	_, err := New[int]().Contains(1)
	assert.ErrorIs(t, err, ErrEmptyList)

	l := New(1, 2, 3)
	for _, v := range []int{1, 2, 3} {
		ok, err := l.Contains(v)
		require.NoError(t, err)
		assert.True(t, ok, "value %d", v)
	}
	ok, err := l.Contains(4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReverse(t *testing.T) {
	assert.ErrorIs(t, New[int]().Reverse(), ErrEmptyList)

	single := New(1)
	require.NoError(t, single.Reverse())
	assert.Equal(t, []int{1}, single.Values())

	l := New(1, 2, 3, 4, 5)
	require.NoError(t, l.Reverse())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, l.Values())
	require.NoError(t, l.Reverse())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())
}

func TestConcat(t *testing.T) {
	t.Run("moves nodes and empties other", func(t *testing.T) {
		a := New(1, 2)
		b := New(3, 4)
		a.Concat(b)
		assert.Equal(t, []int{1, 2, 3, 4}, a.Values())
		assert.True(t, b.IsEmpty())

		b.Append(5)
		assert.Equal(t, []int{1, 2, 3, 4}, a.Values(), "other must not share nodes with l")
	})

	t.Run("into empty list", func(t *testing.T) {
		a := New[int]()
		b := New(3)
		a.Concat(b)
		assert.Equal(t, []int{3}, a.Values())
		assert.True(t, b.IsEmpty())
	})

	t.Run("empty or nil other is a no-op", func(t *testing.T) {
		a := New(1)
		a.Concat(New[int]())
		a.Concat(nil)
		assert.Equal(t, []int{1}, a.Values())
	})

	t.Run("with itself", func(t *testing.T) {
		a := New(1, 2)
		a.Concat(a)
		assert.Equal(t, []int{1, 2, 1, 2}, a.Values())
		assert.Equal(t, 4, a.Size())
	})
}

func TestCopy(t *testing.T) {
	a := New(9)
	b := New(1, 2, 3)
	a.Copy(b)
	assert.Equal(t, []int{1, 2, 3}, a.Values())

	b.Append(4)
	require.NoError(t, a.Reverse())
	assert.Equal(t, []int{3, 2, 1}, a.Values())
	assert.Equal(t, []int{1, 2, 3, 4}, b.Values())

	a.Copy(a)
	assert.Equal(t, []int{3, 2, 1}, a.Values())

	a.Copy(nil)
	assert.True(t, a.IsEmpty())
}

func TestClone(t *testing.T) {
	a := New("a", "b")
	c := a.Clone()
	c.Push("z")
	assert.Equal(t, []string{"a", "b"}, a.Values())
	assert.Equal(t, []string{"z", "a", "b"}, c.Values())
}

func TestClear(t *testing.T) {
	l := New(1, 2, 3)
	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Size())
}

func TestAll(t *testing.T) {
	l := New("a", "b", "c")
	var idx []int
	var vals []string
	for i, v := range l.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)

	var seen []string
	for _, v := range l.All() {
		seen = append(seen, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(1, 2, 3).Display(&buf))
	assert.Equal(t, "1\n2\n3\n", buf.String())

	buf.Reset()
	require.NoError(t, New[int]().Display(&buf))
	assert.Empty(t, buf.String())

	errWrite := errors.New("disk full")
	err := New(1, 2, 3).Display(&failingWriter{n: 1, err: errWrite})
	assert.ErrorIs(t, err, errWrite)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", New(1, 2, 3).String())
	assert.Equal(t, "[a b]", fmt.Sprint(New("a", "b")))
}
