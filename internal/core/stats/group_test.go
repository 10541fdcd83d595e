package stats

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupBy(t *testing.T) {
	words := []string{"ads", "bid", "cpc", "api", "bot"}

	counts := GroupBy(words, func(w string) byte { return w[0] }, func(n int, _ string) int { return n + 1 })

	assert.Equal(t, map[byte]int{'a': 2, 'b': 2, 'c': 1}, counts)
	assert.Equal(t, []byte{'a', 'b', 'c'}, SortedKeys(counts, cmp.Compare[byte]))
}

func TestGroupByEmpty(t *testing.T) {
	got := GroupBy([]int(nil), func(i int) int { return i }, func(a, i int) int { return a + i })
	assert.Empty(t, got)
	assert.Empty(t, SortedKeys(got, cmp.Compare[int]))
}
