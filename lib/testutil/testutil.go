package testutil

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/cxxxr/linkedsort/lib/linkedlist"
	"github.com/stretchr/testify/require"
)

// RandomInts returns n values drawn from a fixed-seed source so failures
// reproduce.
func RandomInts(t *testing.T, n int, seed int64) []int {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(1000) - 500
	}
	return values
}

func RequireSorted[T cmp.Ordered](t *testing.T, list *linkedlist.List[T]) {
	t.Helper()
	require.Nil(t, list.CheckSorted())
}
