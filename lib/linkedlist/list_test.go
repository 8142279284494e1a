package linkedlist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errStop = errors.New("stop")

func Test_FromSlice(t *testing.T) {
	cases := []struct {
		input []int
	}{
		{input: []int{}},
		{input: []int{7}},
		{input: []int{4, 9, 6, 5, 0}},
		{input: []int{1, 1, 1}},
	}

	for _, tc := range cases {
		list := FromSlice(tc.input)
		require.Equal(t, tc.input, list.Slice())
		require.Equal(t, len(tc.input), list.Length())
	}
}

func Test_Prepend(t *testing.T) {
	list := New[int]()
	require.Nil(t, list.Head())
	require.Equal(t, []int{}, list.Slice())

	list.Prepend(3)
	list.Prepend(2)
	list.Prepend(1)

	require.Equal(t, []int{1, 2, 3}, list.Slice())
	require.Equal(t, 1, list.Head().Value())
	require.Equal(t, 2, list.Head().Next().Value())
}

func Test_Slice_restartable(t *testing.T) {
	list := FromSlice([]string{"b", "a", "c"})

	require.Equal(t, []string{"b", "a", "c"}, list.Slice())
	// traversal must not mutate the list
	require.Equal(t, []string{"b", "a", "c"}, list.Slice())
}

func Test_Map_stopsOnError(t *testing.T) {
	list := FromSlice([]int{1, 2, 3, 4})

	visited := make([]int, 0)
	err := list.Map(func(v int) error {
		visited = append(visited, v)
		if v == 2 {
			return errStop
		}
		return nil
	})

	require.Equal(t, errStop, err)
	require.Equal(t, []int{1, 2}, visited)
}

func Test_CheckSorted(t *testing.T) {
	cases := []struct {
		input  []int
		sorted bool
	}{
		{input: []int{}, sorted: true},
		{input: []int{5}, sorted: true},
		{input: []int{1, 2, 2, 3}, sorted: true},
		{input: []int{2, 1}, sorted: false},
		{input: []int{1, 3, 2}, sorted: false},
	}

	for _, tc := range cases {
		err := FromSlice(tc.input).CheckSorted()
		if tc.sorted {
			require.Nil(t, err)
		} else {
			require.Error(t, err)
		}
	}
}
